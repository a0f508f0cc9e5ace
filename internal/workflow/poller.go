package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/cutekitek/judge-submit/internal/judge"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/pkg/errors"
)

const DefaultPollInterval = 2 * time.Second

// Observer is called once per status check. It must not block.
type Observer func(attempt int, result *models.SubmissionResult)

type PollOptions struct {
	Interval time.Duration
	// Zero means no cap.
	MaxAttempts int
	Observer    Observer
}

type Poller struct {
	judge judge.Judge
}

func NewPoller(j judge.Judge) *Poller {
	return &Poller{judge: j}
}

// PollUntilDone checks the submission until the judge reports a terminal
// state and returns that response as is. Only one check is in flight at a time.
func (p *Poller) PollUntilDone(ctx context.Context, creds models.Credentials, handle models.Handle, opts PollOptions) (*models.SubmissionResult, error) {
	if opts.Interval <= 0 {
		return nil, ErrInvalidInterval
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, contextErr(err)
		}
		result, err := p.judge.Check(ctx, creds, handle)
		if err != nil {
			if ctx.Err() != nil {
				return nil, contextErr(ctx.Err())
			}
			return nil, errors.Wrapf(err, "status check %d failed", attempt)
		}
		if opts.Observer != nil {
			opts.Observer(attempt, result)
		}
		if result.State.Terminal() {
			slog.Info("verdict received", "handle", handle, "state", result.State, "attempts", attempt)
			return result, nil
		}
		slog.Debug("submission not judged yet", "handle", handle, "state", result.State, "attempt", attempt)
		if opts.MaxAttempts > 0 && attempt >= opts.MaxAttempts {
			return nil, errors.Wrapf(ErrTimeout, "still %s after %d attempts", result.State, attempt)
		}

		timer := time.NewTimer(opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, contextErr(ctx.Err())
		case <-timer.C:
		}
	}
}
