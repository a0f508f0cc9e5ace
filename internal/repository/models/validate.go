package models

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidRequest = errors.New("invalid submission request")

func (r *SubmissionRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.QuestionID) == "":
		return errors.Wrap(ErrInvalidRequest, "question id is empty")
	case strings.TrimSpace(r.Slug) == "":
		return errors.Wrap(ErrInvalidRequest, "problem slug is empty")
	case strings.TrimSpace(r.Language) == "":
		return errors.Wrap(ErrInvalidRequest, "language is empty")
	case strings.TrimSpace(r.Code) == "":
		return errors.Wrap(ErrInvalidRequest, "source code is empty")
	}
	return nil
}

// ErrConfigurationMissing is returned when required settings such as the
// session secrets are absent.
var ErrConfigurationMissing = errors.New("configuration missing")

func (c Credentials) Validate() error {
	var missing []string
	if c.Session == "" {
		missing = append(missing, "session token")
	}
	if c.CSRFToken == "" {
		missing = append(missing, "csrf token")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrConfigurationMissing, "%s not set", strings.Join(missing, " and "))
	}
	return nil
}
