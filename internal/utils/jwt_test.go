package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── GenerateJWTToken ─────────────────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("client-1", time.Hour, "sign-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "client-1", token.ClientID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		duration time.Duration
		signKey  string
	}{
		{name: "empty client id", clientID: "", duration: time.Hour, signKey: "k"},
		{name: "zero duration", clientID: "c", duration: 0, signKey: "k"},
		{name: "empty sign key", clientID: "c", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.clientID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

// ── ValidateAndParseJWTToken ─────────────────────────────────────────────────

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("client-1", time.Hour, "sign-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "sign-key")

	require.NoError(t, err)
	assert.Equal(t, "client-1", parsed.ClientID)
	assert.Equal(t, TokenIssuer, parsed.Issuer)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("client-1", time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key")

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("client-1", -time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "sign-key")

	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", "sign-key")

	require.Error(t, err)
}
