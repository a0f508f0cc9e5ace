package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/cutekitek/judge-submit/internal/mappers"
	"github.com/cutekitek/judge-submit/internal/repository/models"
)

// fakeJudge replays scripted status bodies. Once the script runs out the last
// body is repeated.
type fakeJudge struct {
	mu          sync.Mutex
	handle      models.Handle
	submitErr   error
	checkErr    error
	bodies      []string
	submitCalls int
	checkCalls  []time.Time
	inFlight    int
	maxInFlight int
}

func (f *fakeJudge) Submit(ctx context.Context, creds models.Credentials, req *models.SubmissionRequest) (models.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return f.handle, nil
}

func (f *fakeJudge) Check(ctx context.Context, creds models.Credentials, handle models.Handle) (*models.SubmissionResult, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	n := len(f.checkCalls)
	f.checkCalls = append(f.checkCalls, time.Now())
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.checkErr != nil {
		return nil, f.checkErr
	}
	if n >= len(f.bodies) {
		n = len(f.bodies) - 1
	}
	return mappers.CheckBodyToResult([]byte(f.bodies[n]))
}

func (f *fakeJudge) checks() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.checkCalls...)
}

var testCreds = models.Credentials{Session: "session", CSRFToken: "csrf"}

func testRequest() *models.SubmissionRequest {
	return &models.SubmissionRequest{
		Slug:       "longest-palindromic-substring",
		QuestionID: "5",
		Language:   "cpp",
		Code:       "class Solution {};",
	}
}
