package workflow

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cutekitek/judge-submit/internal/repository/models"
)

type Outcome int8

const (
	OutcomePass Outcome = iota
	OutcomeFail
	OutcomeTimeout
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("outcome(%d)", int8(o))
}

type Verdict struct {
	Outcome Outcome
	Result  *models.SubmissionResult
	Text    string
}

// detail fields shown when the judge includes them, in this order
var detailFields = []struct {
	key   string
	label string
}{
	{"compile_error", "Compile error"},
	{"runtime_error", "Runtime error"},
	{"last_testcase", "Last test case"},
	{"expected_output", "Expected"},
	{"code_output", "Output"},
}

// Report turns a terminal result into a verdict. It has no side effects.
func Report(result *models.SubmissionResult) *Verdict {
	v := &Verdict{Outcome: OutcomeFail, Result: result}
	if result.State.Accepted() {
		v.Outcome = OutcomePass
	}

	status := result.StatusDisplay
	if status == "" {
		status = string(result.State)
	}
	var b strings.Builder
	b.WriteString("\n--- Submission Result ---\n")
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Runtime: %s\n", result.StatusRuntime)
	fmt.Fprintf(&b, "Memory: %s\n", result.StatusMemory)
	fmt.Fprintf(&b, "Language: %s\n", result.Lang)
	correct, okCorrect := rawText(result.Extra["total_correct"])
	total, okTotal := rawText(result.Extra["total_testcases"])
	if okCorrect && okTotal {
		fmt.Fprintf(&b, "Passed: %s/%s\n", correct, total)
	}
	if v.Outcome == OutcomeFail {
		for _, f := range detailFields {
			if text, ok := rawText(result.Extra[f.key]); ok && text != "" {
				fmt.Fprintf(&b, "%s: %s\n", f.label, text)
			}
		}
	}
	b.WriteString("-------------------------\n\n")
	if v.Outcome == OutcomePass {
		b.WriteString("Submission Accepted!\n")
	} else {
		b.WriteString("Submission Failed or Errored.\n")
	}
	v.Text = b.String()
	return v
}

func WriteVerdict(w io.Writer, v *Verdict) error {
	_, err := io.WriteString(w, v.Text)
	return err
}

func rawText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
