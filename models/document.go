package models

import (
	"bytes"
	"encoding/json"
	"net/url"
)

// Task selects which processing pipelines the service runs on an uploaded
// document.
type Task string

const (
	// TaskSmart runs structured medical-record extraction ("smart report").
	TaskSmart Task = "smart"

	// TaskPII runs personally-identifiable-information detection.
	TaskPII Task = "pii"

	// TaskBoth runs both pipelines. The API has no literal "both" value:
	// the client expands it into two repeated task query parameters
	// (see QueryValues).
	TaskBoth Task = "both"
)

// Valid reports whether t is one of the three supported task values.
func (t Task) Valid() bool {
	switch t {
	case TaskSmart, TaskPII, TaskBoth:
		return true
	}
	return false
}

// QueryValues returns the query parameters that encode the given document
// type and task on the wire.
//
// TaskBoth is expanded client-side into task=smart&task=pii — the server
// does not accept task=both, so the expansion must be preserved verbatim
// for wire compatibility.
func (t Task) QueryValues(docType string) url.Values {
	v := url.Values{}
	v.Set("dt", docType)
	if t == TaskBoth {
		v.Add("task", string(TaskSmart))
		v.Add("task", string(TaskPII))
	} else {
		v.Add("task", string(t))
	}
	return v
}

// DocumentSubmission is the response body of the document upload endpoint.
type DocumentSubmission struct {
	// DocumentID is the server-assigned identifier used to poll for the
	// processing result.
	DocumentID string `json:"document_id"`

	// Status is the initial processing status reported by the server
	// (typically "queued" or "pending").
	Status string `json:"status,omitempty"`
}

// Document processing statuses reported by the result endpoint.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ResultData carries the extraction payloads of a processed document.
// Both fields are kept as raw JSON: the client passes them through to the
// caller without interpreting their schema.
type ResultData struct {
	// FHIR is the structured healthcare-data payload (FHIR bundle).
	FHIR json.RawMessage `json:"fhir,omitempty"`

	// Output is the semi-structured extraction payload.
	Output json.RawMessage `json:"output,omitempty"`
}

// DocumentResult is the response body of the per-document result endpoint.
//
// Raw holds the untouched response body as received from the server, so
// callers get every field back — including ones this struct does not model.
type DocumentResult struct {
	// Status is the processing status ("pending", "completed", "failed", ...).
	Status string `json:"status"`

	// Data holds the extraction payloads once processing finishes.
	Data ResultData `json:"data"`

	// Raw is the verbatim response body. Not part of the wire format.
	Raw json.RawMessage `json:"-"`
}

// Completed reports whether processing has finished. Completion is defined
// by payload content — both fhir and output present — not by the Status
// field: a server that reports status "completed" without payloads is still
// treated as in-flight.
func (r DocumentResult) Completed() bool {
	return payloadPresent(r.Data.FHIR) && payloadPresent(r.Data.Output)
}

// payloadPresent reports whether raw holds a non-empty JSON value.
// null, {}, [] and "" all count as absent: the service emits empty
// placeholders while processing is still in flight.
func payloadPresent(raw json.RawMessage) bool {
	switch s := string(bytes.TrimSpace(raw)); s {
	case "", "null", "{}", "[]", `""`:
		return false
	}
	return true
}

// Failed reports whether the server marked processing as failed.
func (r DocumentResult) Failed() bool {
	return r.Status == StatusFailed
}
