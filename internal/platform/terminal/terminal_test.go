package terminal

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/term"
)

func TestReadStatusString(t *testing.T) {
	tests := []struct {
		status   ReadStatus
		expected string
	}{
		{ReadOK, "ok"},
		{ReadTimeout, "timeout"},
		{ReadError, "error"},
		{ReadStatus(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("ReadStatus(%d).String() = %q, expected %q", tc.status, got, tc.expected)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	if DefaultOptions().ReadTimeout != 1 {
		t.Errorf("DefaultOptions().ReadTimeout = %d, expected 1", DefaultOptions().ReadTimeout)
	}
}

func TestOpenRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal; Open would take over the test's tty")
	}

	s, err := Open(DefaultOptions())
	if err == nil {
		s.Restore()
		t.Fatal("Open() should fail when stdin is not a terminal")
	}
	if !errors.Is(err, ErrTerminalConfig) {
		t.Errorf("Open() error = %v, expected ErrTerminalConfig", err)
	}
}
