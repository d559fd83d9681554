package store

import "errors"

var (
	// ErrDocumentNotFound is returned when a result is requested for a
	// document id this process never issued.
	ErrDocumentNotFound = errors.New("document not found")
)
