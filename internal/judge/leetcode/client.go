package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cutekitek/judge-submit/internal/judge"
	"github.com/cutekitek/judge-submit/internal/mappers"
	"github.com/cutekitek/judge-submit/internal/repository/dto"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL   = "https://leetcode.com"
	DefaultUserAgent = "Mozilla/5.0"

	maxBodySize = 4 << 20
)

var ErrBodyTooLarge = errors.New("response body too large")

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Used instead of a client built from Timeout when set.
	HTTPClient *http.Client
}

type Client struct {
	cfg Config
	hc  *http.Client
}

var _ judge.Judge = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, hc: hc}
}

func (c *Client) Submit(ctx context.Context, creds models.Credentials, req *models.SubmissionRequest) (models.Handle, error) {
	body, err := json.Marshal(mappers.SubmissionRequestToPayload(req))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode submission")
	}
	slug := url.PathEscape(req.Slug)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/problems/%s/submit/", c.cfg.BaseURL, slug), bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build submit request")
	}
	c.authorize(httpReq, creds)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Referer", fmt.Sprintf("%s/problems/%s/", c.cfg.BaseURL, slug))
	httpReq.Header.Set("x-csrftoken", creds.CSRFToken)

	status, data, err := c.do(httpReq)
	if err != nil {
		return "", &judge.TransportError{Op: "submit", Err: err}
	}
	if !json.Valid(data) {
		return "", &judge.TransportError{Op: "submit", Err: malformedBody(status, data)}
	}
	var resp dto.SubmitResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", &judge.RejectedError{StatusCode: status, Body: data}
	}
	handle, ok := mappers.SubmitResponseToHandle(&resp)
	if !ok {
		return "", &judge.RejectedError{StatusCode: status, Body: data}
	}
	return handle, nil
}

func (c *Client) Check(ctx context.Context, creds models.Credentials, handle models.Handle) (*models.SubmissionResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/submissions/detail/%s/check/", c.cfg.BaseURL, url.PathEscape(string(handle))), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build check request")
	}
	c.authorize(httpReq, creds)

	status, data, err := c.do(httpReq)
	if err != nil {
		return nil, &judge.TransportError{Op: "check", Err: err}
	}
	result, err := mappers.CheckBodyToResult(data)
	if err != nil {
		if !json.Valid(data) {
			err = malformedBody(status, data)
		} else if !isSuccess(status) {
			err = errors.Wrapf(err, "unexpected status %d", status)
		}
		return nil, &judge.TransportError{Op: "check", Err: err}
	}
	return result, nil
}

func (c *Client) authorize(req *http.Request, creds models.Credentials) {
	req.Header.Set("Cookie", fmt.Sprintf("LEETCODE_SESSION=%s; csrftoken=%s;", creds.Session, creds.CSRFToken))
	req.Header.Set("User-Agent", c.cfg.UserAgent)
}

// do sends the request and reads the whole body. The body is closed on every path.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "failed to read response body")
	}
	if len(data) > maxBodySize {
		return resp.StatusCode, nil, errors.Wrapf(ErrBodyTooLarge, "status %d, limit %d bytes", resp.StatusCode, maxBodySize)
	}
	slog.Debug("judge request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"size", len(data),
	)
	return resp.StatusCode, data, nil
}

func malformedBody(status int, data []byte) error {
	const maxShown = 256
	shown := data
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	return fmt.Errorf("malformed response body (status %d): %q", status, shown)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
