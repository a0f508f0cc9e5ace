package benchmarks

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cutekitek/judge-submit/internal/judge/leetcode"
	"github.com/cutekitek/judge-submit/internal/mappers"
	"github.com/cutekitek/judge-submit/internal/repository/models"
	"github.com/cutekitek/judge-submit/internal/workflow"
)

var (
	server *httptest.Server
	checks int64
)

const acceptedBody = `{"state":"SUCCESS","status_display":"Accepted","status_runtime":"4 ms","status_memory":"6 MB","lang":"cpp","total_correct":142,"total_testcases":142}`

func initServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/problems/longest-palindromic-substring/submit/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"submission_id":12345}`)
	})
	mux.HandleFunc("/submissions/detail/12345/check/", func(w http.ResponseWriter, r *http.Request) {
		// every other check is still pending
		if atomic.AddInt64(&checks, 1)%2 == 1 {
			_, _ = io.WriteString(w, `{"state":"PENDING"}`)
			return
		}
		_, _ = io.WriteString(w, acceptedBody)
	})
	server = httptest.NewServer(mux)
}

func TestMain(m *testing.M) {
	initServer()
	code := m.Run()
	server.Close()
	os.Exit(code)
}

func newRequest() *models.SubmissionRequest {
	return &models.SubmissionRequest{
		Slug:       "longest-palindromic-substring",
		QuestionID: "5",
		Language:   "cpp",
		Code:       "class Solution {};",
	}
}

var creds = models.Credentials{Session: "session", CSRFToken: "csrf"}

func BenchmarkWorkflowRun(b *testing.B) {
	client := leetcode.NewClient(leetcode.Config{BaseURL: server.URL, Timeout: 5 * time.Second})
	wf := workflow.NewWorkflow(workflow.Config{
		Poll: workflow.PollOptions{Interval: time.Microsecond},
		Out:  io.Discard,
	}, client)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := wf.Run(context.Background(), creds, newRequest())
		if err != nil {
			b.Fatalf("Run failed: %v", err)
		}
		if v.Outcome != workflow.OutcomePass {
			b.Fatalf("Unexpected outcome: %v", v.Outcome)
		}
	}
}

func BenchmarkCheckBodyToResult(b *testing.B) {
	body := []byte(acceptedBody)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mappers.CheckBodyToResult(body); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}

func BenchmarkReport(b *testing.B) {
	res, err := mappers.CheckBodyToResult([]byte(acceptedBody))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v := workflow.Report(res); v.Outcome != workflow.OutcomePass {
			b.Fatalf("Unexpected outcome: %v", v.Outcome)
		}
	}
}
