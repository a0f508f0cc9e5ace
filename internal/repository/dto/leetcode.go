package dto

import "encoding/json"

type SubmitPayload struct {
	Lang       string `json:"lang"`
	QuestionID string `json:"question_id"`
	TypedCode  string `json:"typed_code"`
}

type SubmitResponse struct {
	// number or string depending on the judge
	SubmissionID json.RawMessage `json:"submission_id"`
}

type CheckResponse struct {
	State         *string `json:"state"`
	StatusDisplay string  `json:"status_display"`
	StatusRuntime string  `json:"status_runtime"`
	StatusMemory  string  `json:"status_memory"`
	Lang          string  `json:"lang"`
}
