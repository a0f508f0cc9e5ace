package workflow

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrTimeout         = errors.New("no verdict before the polling limit")
	ErrCancelled       = errors.New("polling cancelled")
	ErrInvalidInterval = errors.New("poll interval must be positive")
)

func contextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(ErrTimeout, "deadline exceeded")
	}
	return errors.Wrap(ErrCancelled, err.Error())
}
