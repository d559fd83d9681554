// Package store holds the mock API server's in-memory document registry.
// State lives for the lifetime of the process only; the mock is a local
// development tool and deliberately persists nothing.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DocumentRecord describes one submitted document tracked by the mock
// server.
type DocumentRecord struct {
	// DocumentID is the server-assigned identifier ("doc_" + UUID).
	DocumentID string
	// ClientID is the API client that submitted the document.
	ClientID string
	// FileName is the uploaded file's name from the multipart field.
	FileName string
	// DocType is the dt query parameter value.
	DocType string
	// Tasks are the task query parameter values as received on the wire.
	Tasks []string
	// SubmittedAt is when the upload was accepted.
	SubmittedAt time.Time
}

// DocumentStore is a concurrency-safe in-memory registry of submitted
// documents.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]DocumentRecord
}

// NewDocumentStore creates an empty registry.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]DocumentRecord)}
}

// Create registers a new document and returns the stored record with a
// freshly assigned document id.
func (s *DocumentStore) Create(clientID, fileName, docType string, tasks []string) DocumentRecord {
	rec := DocumentRecord{
		DocumentID:  "doc_" + newDocumentUUID(),
		ClientID:    clientID,
		FileName:    fileName,
		DocType:     docType,
		Tasks:       tasks,
		SubmittedAt: time.Now(),
	}

	s.mu.Lock()
	s.docs[rec.DocumentID] = rec
	s.mu.Unlock()

	return rec
}

// Get returns the record for documentID, or [ErrDocumentNotFound] when the
// id was never issued by this process.
func (s *DocumentStore) Get(documentID string) (DocumentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.docs[documentID]
	if !ok {
		return DocumentRecord{}, ErrDocumentNotFound
	}
	return rec, nil
}

// newDocumentUUID prefers time-ordered V7 UUIDs so that ids sort by
// submission time; falls back to V4 if the clock source fails.
func newDocumentUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
