package service

import "errors"

var (
	ErrInvalidTask      = errors.New("invalid task: must be one of smart, pii, both")
	ErrFileNotFound     = errors.New("file not found")
	ErrProcessingFailed = errors.New("document processing failed")
	ErrWaitTimeout      = errors.New("document processing timed out")
)
