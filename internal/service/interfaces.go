// Package service implements the application logic of the Eka Care client:
// input validation, document submission, and the poll-and-wait loop that
// turns the asynchronous remote API into a blocking call.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-eka-mr/models"
)

// WaitOptions controls the polling loop of SubmitAndWait.
type WaitOptions struct {
	// DocType is the document type query parameter; defaults to "lr".
	DocType string

	// Interval is the sleep between result fetches; defaults to 10s.
	Interval time.Duration

	// Timeout is the wall-clock budget for the whole wait; defaults to 5m.
	Timeout time.Duration

	// OnPoll, when non-nil, is invoked after every fetch that did not end
	// the wait. The CLI uses it to drive progress output.
	OnPoll func(result models.DocumentResult)
}

// DocumentService exposes the three operations of the client: submit a
// document, fetch its result, and the submit-and-wait convenience
// composition of the two.
type DocumentService interface {
	// Submit validates the task value and the file path, then uploads the
	// file for processing. Validation failures ([ErrInvalidTask],
	// [ErrFileNotFound]) are reported before any network call is made.
	Submit(ctx context.Context, filePath, docType string, task models.Task) (models.DocumentSubmission, error)

	// Result fetches the processing result for a document id. The result
	// carries the verbatim server response in its Raw field.
	Result(ctx context.Context, documentID string) (models.DocumentResult, error)

	// Wait polls the result of an already-submitted document until
	// completion, server-reported failure ([ErrProcessingFailed]), or
	// timeout ([ErrWaitTimeout]). Cancellation of ctx aborts the wait
	// between fetches.
	Wait(ctx context.Context, documentID string, opts WaitOptions) (models.DocumentResult, error)

	// SubmitAndWait composes Submit and Wait in a single call.
	SubmitAndWait(ctx context.Context, filePath string, task models.Task, opts WaitOptions) (models.DocumentResult, error)
}
