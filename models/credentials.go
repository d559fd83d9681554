package models

// Credentials holds the client id/secret pair used to authenticate against
// the Eka Care API. Both values are opaque strings issued by Eka Care; the
// client never inspects or derives anything from them.
type Credentials struct {
	// ClientID is the API client identifier.
	ClientID string `json:"client_id"`

	// ClientSecret is the API client secret. Must be kept confidential.
	ClientSecret string `json:"client_secret"`
}

// AccessToken is the response body of the account login endpoint.
//
// Only AccessToken is required by the client; the remaining fields are
// returned by the service and carried along for callers that want them.
type AccessToken struct {
	// Token is the bearer token attached to every authenticated request.
	Token string `json:"access_token"`

	// RefreshToken allows obtaining a new access token without
	// re-sending the client secret. Unused by this client: the token is
	// acquired once per process and processes are short-lived.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresIn is the token lifetime in seconds as reported by the server.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}
