//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/render"
)

// Session is an acquired interactive terminal. Open puts it in raw mode
// and hides the cursor; Restore undoes both and is safe to call repeatedly.
type Session struct {
	in       *os.File
	out      *os.File
	inFd     int
	outFd    int
	oldState *term.State

	cursorHidden bool
	restored     bool
}

// Open switches stdin to raw mode with a read timeout and hides the cursor.
// On failure whatever was already changed is restored before returning.
func Open(opts Options) (*Session, error) {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = core.DefaultReadTimeout
	}

	s := &Session{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}

	if !term.IsTerminal(s.inFd) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", ErrTerminalConfig)
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTerminalConfig, err)
	}
	s.oldState = old

	if err := setReadTimeout(s.inFd, opts.ReadTimeout); err != nil {
		//nolint:errcheck // Already failing; report the original error
		s.Restore()
		return nil, fmt.Errorf("%w: set read timeout: %w", ErrTerminalConfig, err)
	}

	s.cursorHidden = true
	if _, err := io.WriteString(s.out, render.HideCursor); err != nil {
		//nolint:errcheck // Already failing; report the original error
		s.Restore()
		return nil, fmt.Errorf("%w: %w", render.ErrOutputWrite, err)
	}

	return s, nil
}

// setReadTimeout makes read(2) return after at most deciseconds tenths of
// a second even when no byte is available (VMIN=0, VTIME=deciseconds).
func setReadTimeout(fd, deciseconds int) error {
	if deciseconds > 255 {
		deciseconds = 255
	}
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = uint8(deciseconds)
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
}

// Size returns the terminal window size.
func (s *Session) Size() (core.Size, error) {
	cols, rows, err := term.GetSize(s.outFd)
	if err != nil {
		return core.Size{}, fmt.Errorf("%w: %w", ErrWindowQuery, err)
	}
	return core.Size{Rows: rows, Columns: cols}, nil
}

// Read attempts to read one byte. A timeout with no data, EAGAIN and EINTR
// are reported as ReadTimeout; anything else is a ReadError.
func (s *Session) Read() ReadResult {
	var buf [1]byte
	n, err := unix.Read(s.inFd, buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return ReadResult{Status: ReadTimeout}
		}
		return ReadResult{Status: ReadError, Err: fmt.Errorf("%w: %w", ErrInputRead, err)}
	}
	if n == 0 {
		return ReadResult{Status: ReadTimeout}
	}
	return ReadResult{Status: ReadOK, Key: buf[0]}
}

// Write sends p to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Restore puts the terminal back in its original mode, then resets colors
// and shows the cursor. Later calls are no-ops.
func (s *Session) Restore() error {
	if s.restored {
		return nil
	}
	s.restored = true

	var errs []error
	if s.oldState != nil {
		if err := term.Restore(s.inFd, s.oldState); err != nil {
			errs = append(errs, fmt.Errorf("%w: restore mode: %w", ErrTerminalConfig, err))
		}
	}
	if s.cursorHidden {
		if _, err := io.WriteString(s.out, render.ResetStyle+render.ShowCursor); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", render.ErrOutputWrite, err))
		}
	}
	return errors.Join(errs...)
}
