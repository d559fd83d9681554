package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Task ─────────────────────────────────────────────────────────────────────

func TestTask_Valid(t *testing.T) {
	tests := []struct {
		name  string
		task  Task
		valid bool
	}{
		{name: "smart", task: TaskSmart, valid: true},
		{name: "pii", task: TaskPII, valid: true},
		{name: "both", task: TaskBoth, valid: true},
		{name: "empty", task: Task(""), valid: false},
		{name: "unknown", task: Task("ocr"), valid: false},
		{name: "wrong case", task: Task("Smart"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.task.Valid())
		})
	}
}

func TestTask_QueryValues_Single(t *testing.T) {
	v := TaskSmart.QueryValues("lr")

	assert.Equal(t, "lr", v.Get("dt"))
	assert.Equal(t, []string{"smart"}, v["task"])
}

func TestTask_QueryValues_BothExpandsToTwoParams(t *testing.T) {
	v := TaskBoth.QueryValues("lr")

	// "both" никогда не уходит на провод — только два повторённых task
	assert.Equal(t, []string{"smart", "pii"}, v["task"])
	assert.NotContains(t, v["task"], "both")
}

// ── DocumentResult ───────────────────────────────────────────────────────────

func TestDocumentResult_Completed_RequiresBothPayloads(t *testing.T) {
	fhir := json.RawMessage(`{"resourceType":"Bundle"}`)
	output := json.RawMessage(`{"tests":[]}`)

	tests := []struct {
		name      string
		result    DocumentResult
		completed bool
	}{
		{
			name:      "both payloads present",
			result:    DocumentResult{Status: StatusPending, Data: ResultData{FHIR: fhir, Output: output}},
			completed: true,
		},
		{
			name:      "status completed but no payloads",
			result:    DocumentResult{Status: StatusCompleted},
			completed: false,
		},
		{
			name:      "only fhir",
			result:    DocumentResult{Data: ResultData{FHIR: fhir}},
			completed: false,
		},
		{
			name:      "only output",
			result:    DocumentResult{Data: ResultData{Output: output}},
			completed: false,
		},
		{
			name:      "null payloads",
			result:    DocumentResult{Data: ResultData{FHIR: json.RawMessage(`null`), Output: json.RawMessage(`null`)}},
			completed: false,
		},
		{
			name:      "empty object payloads",
			result:    DocumentResult{Data: ResultData{FHIR: json.RawMessage(`{}`), Output: json.RawMessage(`{}`)}},
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.completed, tt.result.Completed())
		})
	}
}

func TestDocumentResult_Failed(t *testing.T) {
	assert.True(t, DocumentResult{Status: StatusFailed}.Failed())
	assert.False(t, DocumentResult{Status: StatusPending}.Failed())
	assert.False(t, DocumentResult{Status: StatusCompleted}.Failed())
}

func TestDocumentResult_UnmarshalWireFormat(t *testing.T) {
	body := `{"status":"completed","data":{"fhir":{"resourceType":"Bundle"},"output":{"tests":[]}}}`

	var result DocumentResult
	require.NoError(t, json.Unmarshal([]byte(body), &result))

	assert.Equal(t, StatusCompleted, result.Status)
	assert.JSONEq(t, `{"resourceType":"Bundle"}`, string(result.Data.FHIR))
	assert.True(t, result.Completed())
}
