package judge

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTransport covers network failures and responses that can't be parsed.
var ErrTransport = errors.New("transport error")

// RejectedError is returned when the judge answered a submission without a
// usable handle.
type RejectedError struct {
	StatusCode int
	Body       []byte
}

func (r *RejectedError) Error() string {
	return fmt.Sprintf("submission rejected(%d): %s", r.StatusCode, r.Body)
}

func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}

// TransportError wraps the cause of a failed request. It matches ErrTransport
// with errors.Is.
type TransportError struct {
	Op  string
	Err error
}

func (t *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTransport, t.Op, t.Err)
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

func (t *TransportError) Is(target error) bool {
	return target == ErrTransport
}
