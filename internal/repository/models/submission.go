package models

import (
	"encoding/json"
	"strings"
)

type State string

const (
	StatePending State = "PENDING"
	StateStarted State = "STARTED"
	StateRunning State = "RUNNING"
	StateSuccess State = "SUCCESS"
)

// Terminal reports whether the judge has finished with the submission.
// Every state other than the pending/running markers is terminal.
func (s State) Terminal() bool {
	switch State(strings.ToUpper(string(s))) {
	case StatePending, StateStarted, StateRunning:
		return false
	}
	return true
}

func (s State) Accepted() bool {
	return State(strings.ToUpper(string(s))) == StateSuccess
}

type Credentials struct {
	Session   string
	CSRFToken string
}

func (c Credentials) Empty() bool {
	return c.Session == "" || c.CSRFToken == ""
}

type SubmissionRequest struct {
	Slug       string
	QuestionID string
	Language   string
	Code       string
}

// Handle identifies one in-flight submission on the judge side.
type Handle string

type SubmissionResult struct {
	State         State  `json:"state"`
	StatusDisplay string `json:"status_display,omitempty"`
	StatusRuntime string `json:"status_runtime,omitempty"`
	StatusMemory  string `json:"status_memory,omitempty"`
	Lang          string `json:"lang,omitempty"`
	// Fields the judge returned that are not modelled above.
	Extra map[string]json.RawMessage `json:"-"`
	// Verbatim response body.
	Raw []byte `json:"-"`
}
