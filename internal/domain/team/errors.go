package team

import "errors"

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrNotMember      = errors.New("you are not a member of this team")
	ErrAlreadyMember  = errors.New("you are already a member of this team")
	ErrNoTeamSelected = errors.New("no team selected")
	ErrTeamHasMembers = errors.New("team still has members")
)
