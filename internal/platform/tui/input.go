package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tilefield/internal/platform/terminal"
)

// KeySource yields single read attempts, each bounded by the terminal's
// read timeout.
type KeySource interface {
	Read() terminal.ReadResult
}

// ReadKey blocks until exactly one byte is read. Timeouts are retried
// silently; a read error is returned wrapped in terminal.ErrInputRead.
// Cancelling ctx ends the wait at the next timeout.
func ReadKey(ctx context.Context, src KeySource) (byte, error) {
	for {
		res := src.Read()
		switch res.Status {
		case terminal.ReadOK:
			return res.Key, nil
		case terminal.ReadError:
			if res.Err == nil {
				return 0, terminal.ErrInputRead
			}
			if !errors.Is(res.Err, terminal.ErrInputRead) {
				return 0, fmt.Errorf("%w: %w", terminal.ErrInputRead, res.Err)
			}
			return 0, res.Err
		}

		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
}
