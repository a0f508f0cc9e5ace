package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cutekitek/judge-submit/internal/judge"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/pkg/errors"
)

// Publisher receives every verdict obtained from the judge.
type Publisher interface {
	Publish(ctx context.Context, result *models.SubmissionResult) error
}

type Config struct {
	Poll PollOptions
	// Wall-clock limit for polling, zero disables it.
	PollTimeout time.Duration
	// Disables the in-place progress line.
	Quiet bool
	Out   io.Writer
	// Optional.
	Publisher Publisher
}

type Workflow struct {
	cfg       Config
	submitter *Submitter
	poller    *Poller
}

func NewWorkflow(cfg Config, j judge.Judge) *Workflow {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Poll.Interval == 0 {
		cfg.Poll.Interval = DefaultPollInterval
	}
	return &Workflow{
		cfg:       cfg,
		submitter: NewSubmitter(j),
		poller:    NewPoller(j),
	}
}

// Run submits the solution, waits for the verdict and prints it. A judged
// failure is a normal verdict, not an error. When polling stops early the
// returned verdict carries the timeout or cancelled outcome together with
// the error.
func (w *Workflow) Run(ctx context.Context, creds models.Credentials, req *models.SubmissionRequest) (*Verdict, error) {
	out := w.cfg.Out
	fmt.Fprintf(out, "Submitting solution for %q...\n", req.Slug)
	handle, err := w.submitter.Submit(ctx, creds, req)
	if err != nil {
		if ctx.Err() != nil {
			err = errors.Wrapf(contextErr(ctx.Err()), "failed to submit: %v", err)
			return stoppedVerdict(err), err
		}
		return nil, errors.Wrap(err, "failed to submit")
	}
	fmt.Fprintf(out, "Solution submitted successfully! Submission ID: %s\n", handle)
	fmt.Fprintln(out, "Checking submission status...")

	pollCtx := ctx
	if w.cfg.PollTimeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, w.cfg.PollTimeout)
		defer cancel()
	}

	progressShown := false
	opts := w.cfg.Poll
	userObserver := opts.Observer
	opts.Observer = func(attempt int, result *models.SubmissionResult) {
		if !w.cfg.Quiet && !result.State.Terminal() {
			fmt.Fprintf(out, "\rStatus: %s... attempt %d, retrying in %s.", result.State, attempt, opts.Interval)
			progressShown = true
		}
		if userObserver != nil {
			userObserver(attempt, result)
		}
	}
	result, err := w.poller.PollUntilDone(pollCtx, creds, handle, opts)
	if progressShown {
		fmt.Fprintln(out)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to get verdict for submission %s", handle)
		return stoppedVerdict(err), err
	}

	verdict := Report(result)
	if err := WriteVerdict(out, verdict); err != nil {
		slog.Warn("failed to print verdict", "error", err)
	}
	if w.cfg.Publisher != nil {
		if err := w.cfg.Publisher.Publish(ctx, result); err != nil {
			slog.Error("failed to publish verdict", "handle", handle, "error", err)
		}
	}
	return verdict, nil
}

// stoppedVerdict is the verdict for a run that ended before the judge answered.
func stoppedVerdict(err error) *Verdict {
	switch {
	case errors.Is(err, ErrCancelled):
		return &Verdict{Outcome: OutcomeCancelled}
	case errors.Is(err, ErrTimeout):
		return &Verdict{Outcome: OutcomeTimeout}
	}
	return nil
}
