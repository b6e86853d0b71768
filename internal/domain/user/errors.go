package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrHRAccessRequired    = errors.New("admin or hr access required")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
)
