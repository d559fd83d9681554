// Package utils provides general-purpose helpers shared by the mock server
// and its middleware: type-safe context keys, JSON response writing, and JWT
// token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientIDCtxKey is the key used to store the authenticated API client
// identifier in the request context. Used together with
// GetClientIDFromContext for type-safe retrieval.
var ClientIDCtxKey = contextKey("clientID")

// GetClientIDFromContext retrieves the API client identifier from the
// context.
//
// Returns the client id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}
