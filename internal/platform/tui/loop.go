// Package tui drives the interactive viewer session and the Bubble Tea
// screens around it. It handles the render/read loop, key mapping, the
// tile legend, and the recorded sessions browser.
package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/render"
	"github.com/vovakirdan/tilefield/internal/world"
)

// Terminal is what the loop needs from the interactive terminal.
// terminal.Session implements it.
type Terminal interface {
	io.Writer
	KeySource
	Size() (core.Size, error)
	Restore() error
}

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminating
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// EndReason records why a session ended.
type EndReason string

const (
	EndQuit   EndReason = "quit"   // Quit key
	EndSignal EndReason = "signal" // Context cancelled (SIGTERM, SIGHUP)
	EndError  EndReason = "error"  // Fatal terminal or I/O error
)

// Outcome summarizes a finished session.
type Outcome struct {
	Reason   EndReason
	Offset   core.Offset
	Frames   int
	Escapes  int   // color escapes over all frames
	Bytes    int64 // bytes written to the terminal
	Writes   int64 // write calls issued
	Started  time.Time
	Duration time.Duration
}

// LoopOptions configures a Loop.
type LoopOptions struct {
	BufferSize int         // Output buffer capacity; 0 selects the default
	Logger     *log.Logger // nil discards logs
}

// Loop is the viewer session: it owns the offset and the output buffer,
// reads the world grid, and drives one render per key read.
type Loop struct {
	term     Terminal
	grid     *world.Grid
	buf      *render.Buffer
	renderer *render.Renderer
	keys     *KeyMapper
	logger   *log.Logger

	offset  core.Offset
	state   State
	outcome Outcome
}

// NewLoop creates a session over term showing grid.
func NewLoop(term Terminal, grid *world.Grid, opts LoopOptions) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	buf := render.NewBuffer(term, opts.BufferSize)
	return &Loop{
		term:     term,
		grid:     grid,
		buf:      buf,
		renderer: render.NewRenderer(grid, buf),
		keys:     NewKeyMapper(),
		logger:   logger,
		state:    StateRunning,
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Offset returns the current viewport offset.
func (l *Loop) Offset() core.Offset {
	return l.offset
}

// Run renders and reads keys until the quit key, a fatal error, or ctx is
// cancelled. Whatever the trigger, the terminal is restored before Run
// returns. The returned error is nil only for the quit key.
func (l *Loop) Run(ctx context.Context) (out Outcome, err error) {
	l.outcome = Outcome{Started: time.Now()}

	defer func() {
		if rerr := l.terminate(); rerr != nil {
			err = errors.Join(err, rerr)
			l.outcome.Reason = EndError
		}
		out = l.outcome
	}()

	for l.state == StateRunning {
		quit, stepErr := l.step(ctx)
		switch {
		case stepErr != nil && ctx.Err() != nil && errors.Is(stepErr, ctx.Err()):
			l.outcome.Reason = EndSignal
			l.state = StateTerminating
			return l.outcome, stepErr
		case stepErr != nil:
			l.outcome.Reason = EndError
			l.state = StateTerminating
			return l.outcome, stepErr
		case quit:
			l.outcome.Reason = EndQuit
			l.state = StateTerminating
		}
	}
	return l.outcome, nil
}

// step performs one cycle: size query, frame, key read, offset update.
func (l *Loop) step(ctx context.Context) (bool, error) {
	size, err := l.term.Size()
	if err != nil {
		return false, err
	}

	stats, err := l.renderer.Render(size, l.offset)
	if err != nil {
		return false, err
	}
	l.outcome.Frames++
	l.outcome.Escapes += stats.Escapes
	l.logger.Debug("frame",
		"rows", size.Rows,
		"cols", size.Columns,
		"x", l.offset.X,
		"y", l.offset.Y,
		"escapes", stats.Escapes,
		"bytes", stats.Bytes,
	)

	key, err := ReadKey(ctx, l.term)
	if err != nil {
		return false, err
	}

	action, isQuit := l.keys.MapKey(key)
	l.offset, _ = action.Apply(l.offset)
	return isQuit, nil
}

// terminate restores the terminal and finalizes the outcome.
func (l *Loop) terminate() error {
	l.state = StateTerminating
	err := l.term.Restore()

	l.outcome.Offset = l.offset
	l.outcome.Bytes = l.buf.Written()
	l.outcome.Writes = l.buf.Writes()
	l.outcome.Duration = time.Since(l.outcome.Started)
	return err
}
