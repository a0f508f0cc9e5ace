package workflow

import (
	"context"
	"log/slog"

	"github.com/cutekitek/judge-submit/internal/judge"
	"github.com/cutekitek/judge-submit/internal/repository/models"
)

type Submitter struct {
	judge judge.Judge
}

func NewSubmitter(j judge.Judge) *Submitter {
	return &Submitter{judge: j}
}

// Submit checks its inputs and makes exactly one submit call.
func (s *Submitter) Submit(ctx context.Context, creds models.Credentials, req *models.SubmissionRequest) (models.Handle, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}
	handle, err := s.judge.Submit(ctx, creds, req)
	if err != nil {
		return "", err
	}
	slog.Info("solution submitted", "problem", req.Slug, "question_id", req.QuestionID, "handle", handle)
	return handle, nil
}
