package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	tok, err := Generate(InviteTokenBytes)
	require.NoError(t, err)
	assert.Len(t, tok, 48)
}

func TestGenerate_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := Generate(InviteTokenBytes)
		require.NoError(t, err)
		assert.False(t, seen[tok], "token generated twice: %s", tok)
		seen[tok] = true
	}
}

func TestGenerate_URLSafe(t *testing.T) {
	tok, err := Generate(InviteTokenBytes)
	require.NoError(t, err)
	for _, c := range tok {
		valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '-' || c == '_'
		assert.True(t, valid, "unexpected character %q in token", c)
	}
}

func TestGenerate_InvalidSize(t *testing.T) {
	_, err := Generate(0)
	assert.Error(t, err)

	_, err = Generate(-1)
	assert.Error(t, err)
}

func TestGenerateOTP_Shape(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", otp)
		}
	}
}
