package judge

import (
	"context"

	"github.com/cutekitek/judge-submit/internal/repository/models"
)

// Judge is a remote code-judging service. Each call makes a single attempt.
type Judge interface {
	// Submit sends the solution and returns the handle of the new submission.
	Submit(ctx context.Context, creds models.Credentials, req *models.SubmissionRequest) (models.Handle, error)
	// Check fetches the current status of a submission.
	Check(ctx context.Context, creds models.Credentials, handle models.Handle) (*models.SubmissionResult, error)
}
