package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued by the mock API server.
//
// It embeds [jwt.Token] for low-level operations and caches the values the
// handlers actually need: the compact serialized form and the client id
// extracted from the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (RFC 7519).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// ClientID is the API client identifier from the "sub" claim.
	ClientID string `json:"-"`
}

// GetClientID extracts the client identifier from the token's "sub" claim.
func (t *Token) GetClientID() (string, error) {
	clientID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client id from token: %w", err)
	}
	return clientID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
