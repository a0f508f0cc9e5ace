package mappers

import (
	"encoding/json"

	"github.com/cutekitek/judge-submit/internal/repository/dto"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/cutekitek/judge-submit/pkg/utils"
	"github.com/pkg/errors"
)

var ErrMissingState = errors.New("response has no state field")

func SubmissionRequestToPayload(req *models.SubmissionRequest) *dto.SubmitPayload {
	return &dto.SubmitPayload{
		Lang:       req.Language,
		QuestionID: req.QuestionID,
		TypedCode:  req.Code,
	}
}

// SubmitResponseToHandle reports false when the response carries no usable id.
func SubmitResponseToHandle(resp *dto.SubmitResponse) (models.Handle, bool) {
	id, ok := utils.RawToString(resp.SubmissionID)
	if !ok {
		return "", false
	}
	return models.Handle(id), true
}

var knownCheckFields = map[string]struct{}{
	"state":          {},
	"status_display": {},
	"status_runtime": {},
	"status_memory":  {},
	"lang":           {},
}

// CheckBodyToResult decodes a status body, keeping unknown fields in Extra.
func CheckBodyToResult(body []byte) (*models.SubmissionResult, error) {
	var resp dto.CheckResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode status response")
	}
	if resp.State == nil || *resp.State == "" {
		return nil, ErrMissingState
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode status response")
	}
	result := &models.SubmissionResult{
		State:         models.State(*resp.State),
		StatusDisplay: resp.StatusDisplay,
		StatusRuntime: resp.StatusRuntime,
		StatusMemory:  resp.StatusMemory,
		Lang:          resp.Lang,
		Extra:         make(map[string]json.RawMessage, len(fields)),
		Raw:           append([]byte(nil), body...),
	}
	for k, v := range fields {
		if _, ok := knownCheckFields[k]; ok {
			continue
		}
		result.Extra[k] = v
	}
	return result, nil
}

// ResultToMessage flattens the result back into one JSON object.
func ResultToMessage(result *models.SubmissionResult) ([]byte, error) {
	out := make(map[string]any, len(result.Extra)+5)
	for k, v := range result.Extra {
		out[k] = v
	}
	out["state"] = result.State
	out["status_display"] = result.StatusDisplay
	out["status_runtime"] = result.StatusRuntime
	out["status_memory"] = result.StatusMemory
	out["lang"] = result.Lang
	return json.Marshal(out)
}
