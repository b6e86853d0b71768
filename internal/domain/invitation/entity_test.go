package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvitation_IsValid(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Hour)

	cases := []struct {
		name string
		inv  Invitation
		want bool
	}{
		{
			name: "fresh invitation",
			inv:  Invitation{ExpiresAt: now.Add(24 * time.Hour)},
			want: true,
		},
		{
			name: "expired",
			inv:  Invitation{ExpiresAt: now.Add(-time.Minute)},
			want: false,
		},
		{
			name: "used",
			inv:  Invitation{ExpiresAt: now.Add(24 * time.Hour), UsedAt: &used},
			want: false,
		},
		{
			name: "expired and used",
			inv:  Invitation{ExpiresAt: now.Add(-time.Minute), UsedAt: &used},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.inv.IsValid())
		})
	}
}

func TestMethod_WantsOTP(t *testing.T) {
	assert.False(t, MethodMagicLink.WantsOTP())
	assert.True(t, MethodOTP.WantsOTP())
	assert.True(t, MethodBoth.WantsOTP())
}

func TestMethod_WantsMagicLink(t *testing.T) {
	assert.True(t, MethodMagicLink.WantsMagicLink())
	assert.False(t, MethodOTP.WantsMagicLink())
	assert.True(t, MethodBoth.WantsMagicLink())
}

func TestAcceptRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     AcceptRequest
		wantErr bool
	}{
		{"token only", AcceptRequest{Token: "sometoken"}, false},
		{"otp with email", AcceptRequest{OTPCode: "000123", Email: "a@x.com"}, false},
		{"neither credential", AcceptRequest{Email: "a@x.com"}, true},
		{"otp without email", AcceptRequest{OTPCode: "000123"}, true},
		{"short otp", AcceptRequest{OTPCode: "123", Email: "a@x.com"}, true},
		{"non-numeric otp", AcceptRequest{OTPCode: "12a456", Email: "a@x.com"}, true},
		{"bad email", AcceptRequest{OTPCode: "000123", Email: "not-an-email"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIssueRequest_Validate(t *testing.T) {
	valid := IssueRequest{TeamID: "t1", Email: "new@co.com", Method: MethodBoth}
	assert.NoError(t, valid.Validate())

	missingTeam := IssueRequest{Email: "new@co.com", Method: MethodOTP}
	assert.Error(t, missingTeam.Validate())

	badMethod := IssueRequest{TeamID: "t1", Email: "new@co.com", Method: Method("sms")}
	assert.Error(t, badMethod.Validate())

	missingEmail := IssueRequest{TeamID: "t1", Method: MethodOTP}
	assert.Error(t, missingEmail.Validate())
}
