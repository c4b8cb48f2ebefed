// Package terminal owns the interactive terminal: raw mode acquisition and
// restoration, window size queries, and timeout-bounded single byte reads.
package terminal

import (
	"errors"

	"github.com/vovakirdan/tilefield/internal/core"
)

// Fatal terminal error kinds. Returned errors wrap one of these.
var (
	ErrTerminalConfig = errors.New("terminal: cannot configure terminal")
	ErrWindowQuery    = errors.New("terminal: cannot query window size")
	ErrInputRead      = errors.New("terminal: cannot read input")
)

// ReadStatus classifies the outcome of a single read attempt.
type ReadStatus int

const (
	ReadOK      ReadStatus = iota // One byte was read
	ReadTimeout                   // No data within the timeout; retry
	ReadError                     // Fatal read failure
)

// String returns a human-readable name for the status.
func (s ReadStatus) String() string {
	switch s {
	case ReadOK:
		return "ok"
	case ReadTimeout:
		return "timeout"
	case ReadError:
		return "error"
	default:
		return "unknown"
	}
}

// ReadResult is the outcome of one read attempt.
type ReadResult struct {
	Status ReadStatus
	Key    byte  // Valid when Status is ReadOK
	Err    error // Set when Status is ReadError
}

// Options controls how the session configures the terminal.
type Options struct {
	// ReadTimeout is the raw-mode read timeout in tenths of a second (VTIME).
	ReadTimeout int
}

// DefaultOptions returns the reference terminal options.
func DefaultOptions() Options {
	return Options{ReadTimeout: core.DefaultReadTimeout}
}
