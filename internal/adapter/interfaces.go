// Package adapter provides the transport layer for communicating with the
// Eka Care medical-records API.
//
// The primary abstraction is [DocumentAPI], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDocumentAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-eka-mr/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_api_mock.go -package=mock

// DocumentAPI defines transport-agnostic communication with the Eka Care
// document-processing service. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type DocumentAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after
	// a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Login exchanges the client credentials for an access token. On
	// success it stores the token via SetToken. Returns [ErrNoAccessToken]
	// if the response carries no access_token field, or another error if
	// the request fails.
	Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// SubmitDocument uploads the file at filePath as multipart content for
	// asynchronous processing. The task parameter is encoded per
	// [models.Task.QueryValues] (TaskBoth expands to two repeated params).
	// The response must carry a document id; [ErrNoDocumentID] is returned
	// otherwise.
	SubmitDocument(ctx context.Context, filePath, docType string, task models.Task) (models.DocumentSubmission, error)

	// FetchResult retrieves the processing result for a previously
	// submitted document. The returned result keeps the verbatim response
	// body in its Raw field; unknown fields are never dropped.
	FetchResult(ctx context.Context, documentID string) (models.DocumentResult, error)

	// Close releases the underlying transport resources. Safe to call
	// once; operations after Close are undefined.
	Close()
}
