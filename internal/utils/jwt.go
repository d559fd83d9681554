package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eka-mr/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the "iss" claim embedded in every token issued by the mock
// server and validated on every authenticated request.
const TokenIssuer = "eka-mock"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT access token with the
// client id as subject.
//
// The token includes the standard claims:
//   - Issuer    (iss): TokenIssuer
//   - Subject   (sub): the API client identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if any parameter is empty or zero, or if signing fails.
func GenerateJWTToken(clientID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if clientID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   clientID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, ClientID: clientID}, nil
}

// ValidateAndParseJWTToken verifies the token signature and standard claims
// (issuer, expiry) and extracts the client id from the "sub" claim.
//
// Returns [jwt.ErrTokenExpired] (wrapped) when the token is expired, or
// another error when the signature or claims are invalid.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(signKey), nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing JWT token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Token{}, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return models.Token{}, errors.New("token subject is empty")
	}

	return models.Token{
		Token:            parsed,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		ClientID:         claims.Subject,
	}, nil
}
