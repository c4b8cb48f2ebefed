package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/platform/terminal"
)

func TestApply(t *testing.T) {
	start := core.Offset{X: 10, Y: -4}

	tests := []struct {
		key      byte
		expected core.Offset
		quit     bool
	}{
		{'w', core.Offset{X: 10, Y: -3}, false},
		{'s', core.Offset{X: 10, Y: -5}, false},
		{'a', core.Offset{X: 9, Y: -4}, false},
		{'d', core.Offset{X: 11, Y: -4}, false},
		{'q', start, true},
		{'W', start, false},
		{'Q', start, false},
		{0x1b, start, false},
		{3, start, false}, // Ctrl-C arrives as a plain byte in raw mode
		{' ', start, false},
	}

	for _, tc := range tests {
		got, quit := Apply(tc.key, start)
		if got != tc.expected {
			t.Errorf("Apply(%q) offset = %+v, expected %+v", tc.key, got, tc.expected)
		}
		if quit != tc.quit {
			t.Errorf("Apply(%q) quit = %v, expected %v", tc.key, quit, tc.quit)
		}
	}
}

func TestApplyUnbounded(t *testing.T) {
	off := core.Offset{}
	for i := 0; i < 5000; i++ {
		off, _ = Apply('a', off)
	}
	if off.X != -5000 {
		t.Errorf("offset X = %d, expected -5000", off.X)
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey('q')
	if action != core.ActionQuit || !isQuit {
		t.Errorf("MapKey('q') = %v, %v", action, isQuit)
	}

	action, isQuit = km.MapKey('x')
	if action != core.ActionNone || isQuit {
		t.Errorf("MapKey('x') = %v, %v", action, isQuit)
	}
}

type scriptedSource struct {
	results []terminal.ReadResult
	calls   int
}

func (s *scriptedSource) Read() terminal.ReadResult {
	s.calls++
	if len(s.results) == 0 {
		return terminal.ReadResult{Status: terminal.ReadTimeout}
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

func TestReadKey(t *testing.T) {
	timeout := terminal.ReadResult{Status: terminal.ReadTimeout}
	src := &scriptedSource{results: []terminal.ReadResult{
		timeout, timeout,
		{Status: terminal.ReadOK, Key: 'w'},
	}}

	key, err := ReadKey(context.Background(), src)
	if err != nil {
		t.Fatalf("ReadKey() failed: %v", err)
	}
	if key != 'w' {
		t.Errorf("ReadKey() = %q, expected 'w'", key)
	}
	if src.calls != 3 {
		t.Errorf("Read called %d times, expected 3", src.calls)
	}
}

func TestReadKeyError(t *testing.T) {
	cause := errors.New("EIO")
	src := &scriptedSource{results: []terminal.ReadResult{
		{Status: terminal.ReadError, Err: cause},
	}}

	_, err := ReadKey(context.Background(), src)
	if !errors.Is(err, terminal.ErrInputRead) || !errors.Is(err, cause) {
		t.Errorf("ReadKey() error = %v, expected ErrInputRead wrapping the cause", err)
	}

	src = &scriptedSource{results: []terminal.ReadResult{{Status: terminal.ReadError}}}
	if _, err := ReadKey(context.Background(), src); !errors.Is(err, terminal.ErrInputRead) {
		t.Errorf("ReadKey() error = %v, expected ErrInputRead", err)
	}
}

func TestReadKeyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &scriptedSource{}
	if _, err := ReadKey(ctx, src); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadKey() error = %v, expected context.Canceled", err)
	}
	if src.calls != 1 {
		t.Errorf("Read called %d times, expected 1", src.calls)
	}
}
