package models

import (
	"testing"

	"github.com/pkg/errors"
)

func TestState_Terminal(t *testing.T) {
	tests := []struct {
		state    State
		terminal bool
		accepted bool
	}{
		{state: StatePending},
		{state: StateStarted},
		{state: "running"},
		{state: "pending"},
		{state: StateSuccess, terminal: true, accepted: true},
		{state: "success", terminal: true, accepted: true},
		{state: "WRONG_ANSWER", terminal: true},
		{state: "COMPILE_ERROR", terminal: true},
		{state: "TIME_LIMIT_EXCEEDED", terminal: true},
		{state: "UNKNOWN_NEW_STATE", terminal: true},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.terminal {
			t.Fatalf("%s: expected terminal %v, got %v", tt.state, tt.terminal, got)
		}
		if got := tt.state.Accepted(); got != tt.accepted {
			t.Fatalf("%s: expected accepted %v, got %v", tt.state, tt.accepted, got)
		}
	}
}

func TestCredentials_Validate(t *testing.T) {
	if err := (Credentials{Session: "s", CSRFToken: "c"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range []Credentials{{}, {Session: "s"}, {CSRFToken: "c"}} {
		if !c.Empty() {
			t.Fatalf("%+v must be empty", c)
		}
		if err := c.Validate(); !errors.Is(err, ErrConfigurationMissing) {
			t.Fatalf("%+v: expected configuration missing, got %v", c, err)
		}
	}
}
