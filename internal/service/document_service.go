package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-eka-mr/internal/adapter"
	"github.com/MKhiriev/go-eka-mr/internal/config"
	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/models"
)

type documentService struct {
	api    adapter.DocumentAPI
	logger *logger.Logger
}

// NewDocumentService creates a DocumentService on top of the given transport
// adapter. The adapter must already be authenticated (Login called) before
// Submit or Result are used.
func NewDocumentService(api adapter.DocumentAPI, log *logger.Logger) DocumentService {
	return &documentService{api: api, logger: log}
}

// Submit implements DocumentService. Both validation steps run before any
// network call: an invalid task or a missing file never reaches the wire.
func (s *documentService) Submit(ctx context.Context, filePath, docType string, task models.Task) (models.DocumentSubmission, error) {
	if !task.Valid() {
		return models.DocumentSubmission{}, fmt.Errorf("%w: %q", ErrInvalidTask, task)
	}

	if _, err := os.Stat(filePath); err != nil {
		return models.DocumentSubmission{}, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}

	if docType == "" {
		docType = config.DefaultDocType
	}

	submission, err := s.api.SubmitDocument(ctx, filePath, docType, task)
	if err != nil {
		return models.DocumentSubmission{}, err
	}

	s.logger.Info().
		Str("document_id", submission.DocumentID).
		Str("task", string(task)).
		Str("doc_type", docType).
		Msg("document submitted")

	return submission, nil
}

// Result implements DocumentService.
func (s *documentService) Result(ctx context.Context, documentID string) (models.DocumentResult, error) {
	return s.api.FetchResult(ctx, documentID)
}

// Wait implements DocumentService. It fetches the result every
// opts.Interval until one of the three terminal outcomes:
//
//   - completed: the payload carries both data.fhir and data.output
//     (completion is decided by payload content, not the status field);
//   - failed: the server reports status "failed" ([ErrProcessingFailed]);
//   - timed out: opts.Timeout of wall-clock time elapsed ([ErrWaitTimeout]).
//
// There is no backoff, no jitter, and no retry of a failed fetch: a single
// transport error aborts the wait immediately.
func (s *documentService) Wait(ctx context.Context, documentID string, opts WaitOptions) (models.DocumentResult, error) {
	if opts.Interval <= 0 {
		opts.Interval = config.DefaultPollInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultPollTimeout
	}

	start := time.Now()
	for {
		result, err := s.api.FetchResult(ctx, documentID)
		if err != nil {
			return models.DocumentResult{}, err
		}

		if result.Completed() {
			s.logger.Info().
				Str("document_id", documentID).
				Dur("waited", time.Since(start)).
				Msg("document processing completed")
			return result, nil
		}
		if result.Failed() {
			return models.DocumentResult{}, fmt.Errorf("%w: document %s", ErrProcessingFailed, documentID)
		}
		if time.Since(start) > opts.Timeout {
			return models.DocumentResult{}, fmt.Errorf("%w after %s", ErrWaitTimeout, opts.Timeout)
		}

		if opts.OnPoll != nil {
			opts.OnPoll(result)
		}

		select {
		case <-ctx.Done():
			return models.DocumentResult{}, ctx.Err()
		case <-time.After(opts.Interval):
		}
	}
}

// SubmitAndWait implements DocumentService.
func (s *documentService) SubmitAndWait(ctx context.Context, filePath string, task models.Task, opts WaitOptions) (models.DocumentResult, error) {
	submission, err := s.Submit(ctx, filePath, opts.DocType, task)
	if err != nil {
		return models.DocumentResult{}, err
	}

	return s.Wait(ctx, submission.DocumentID, opts)
}
