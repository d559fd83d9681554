package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the service rejects the bearer
	// token or the credentials (HTTP 401).
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrDocumentNotFound is returned when the result endpoint reports an
	// unknown document id (HTTP 404).
	ErrDocumentNotFound = errors.New("document not found")
	// ErrNoAccessToken is returned when the login response lacks the
	// access_token field.
	ErrNoAccessToken = errors.New("access token not found in authentication response")
	// ErrNoDocumentID is returned when the upload response lacks the
	// document_id field.
	ErrNoDocumentID = errors.New("document id not found in upload response")
)
