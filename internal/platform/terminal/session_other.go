//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"fmt"
	"runtime"

	"github.com/vovakirdan/tilefield/internal/core"
)

// Session is unavailable on this platform.
type Session struct{}

// Open always fails: raw single-byte reads with a timeout need termios.
func Open(opts Options) (*Session, error) {
	return nil, fmt.Errorf("%w: unsupported platform %s", ErrTerminalConfig, runtime.GOOS)
}

// Size always fails.
func (s *Session) Size() (core.Size, error) {
	return core.Size{}, ErrWindowQuery
}

// Read always fails.
func (s *Session) Read() ReadResult {
	return ReadResult{Status: ReadError, Err: ErrInputRead}
}

// Write discards p.
func (s *Session) Write(p []byte) (int, error) {
	return 0, ErrTerminalConfig
}

// Restore is a no-op.
func (s *Session) Restore() error {
	return nil
}
