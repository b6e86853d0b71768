package invitation

import "time"

// TTL is how long an invitation stays redeemable after issuance.
const TTL = 7 * 24 * time.Hour

// Method selects which credentials the invitation carries.
type Method string

const (
	MethodMagicLink Method = "magic_link"
	MethodOTP       Method = "otp"
	MethodBoth      Method = "both"
)

var MethodValues = []string{
	string(MethodMagicLink),
	string(MethodOTP),
	string(MethodBoth),
}

// WantsOTP reports whether the method includes an OTP code
func (m Method) WantsOTP() bool {
	return m == MethodOTP || m == MethodBoth
}

// WantsMagicLink reports whether the method includes a magic link
func (m Method) WantsMagicLink() bool {
	return m == MethodMagicLink || m == MethodBoth
}

// Invitation represents a single-use team invitation entity
type Invitation struct {
	ID        string
	TeamID    string
	Email     string
	Token     string
	OTPCode   *string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	TeamName string
}

// IsExpired checks if the invitation has expired (query-time check)
func (i *Invitation) IsExpired() bool {
	return !i.ExpiresAt.After(time.Now())
}

// IsUsed checks if the invitation has already been consumed
func (i *Invitation) IsUsed() bool {
	return i.UsedAt != nil
}

// IsValid checks if the invitation can still be accepted
func (i *Invitation) IsValid() bool {
	return !i.IsUsed() && !i.IsExpired()
}

// HasOTP reports whether an OTP code was generated for this invitation
func (i *Invitation) HasOTP() bool {
	return i.OTPCode != nil
}

// Outcome is the result of resolving an acceptance attempt.
type Outcome string

const (
	// OutcomeAccepted: side effects ran, the invitation is consumed.
	OutcomeAccepted Outcome = "accepted"
	// OutcomeLoginRequired: no authenticated identity; the invitation token
	// was stored in the session as a resumable pointer.
	OutcomeLoginRequired Outcome = "login_required"
)
