package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// InviteTokenBytes yields 48 base64url characters, enough entropy that a
// collision retry is effectively never taken.
const InviteTokenBytes = 36

// Generate creates a cryptographically secure random token of the given byte
// length, encoded as base64url without padding.
func Generate(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateOTP returns a uniformly random 6-digit code, left-padded with
// zeros. Codes are not unique; lookups pair them with the recipient email.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
