package invitation

import "github.com/crewlabs/crew-backend-go/internal/pkg/validator"

// IssueRequest - POST /invitations
type IssueRequest struct {
	TeamID string `json:"team_id"`
	Email  string `json:"email"`
	Method Method `json:"method"`
}

func (r *IssueRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if len(r.Email) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 255 characters",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(string(r.Method)) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method is required",
		})
	} else if !validator.IsInSlice(string(r.Method), MethodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be one of magic_link, otp, both",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcceptRequest - POST /invitations/accept. Either token alone or
// otp_code+email identify the invitation.
type AcceptRequest struct {
	Token   string `json:"token"`
	OTPCode string `json:"otp_code"`
	Email   string `json:"email"`
}

func (r *AcceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) && validator.IsEmpty(r.OTPCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "either token or otp_code is required",
		})
	}

	if !validator.IsEmpty(r.OTPCode) {
		if !validator.IsValidOTP(r.OTPCode) {
			errs = append(errs, validator.ValidationError{
				Field:   "otp_code",
				Message: "otp_code must be exactly 6 digits",
			})
		}
		if validator.IsEmpty(r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email is required when accepting with otp_code",
			})
		}
	}

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IssueResponse for POST /invitations
type IssueResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	HasOTP    bool   `json:"has_otp"`
	ExpiresAt string `json:"expires_at"`
	// DeliveryWarning is set when the invitation was stored but its email
	// could not be delivered. Never an error: the record is already valid.
	DeliveryWarning string `json:"delivery_warning,omitempty"`
}

// AcceptResponse for both acceptance entry paths
type AcceptResponse struct {
	Status   Outcome `json:"status"`
	TeamID   string  `json:"team_id,omitempty"`
	TeamName string  `json:"team_name,omitempty"`
	// InvitationToken is returned on login_required so the client can resume
	// acceptance after authenticating.
	InvitationToken string `json:"invitation_token,omitempty"`
}
