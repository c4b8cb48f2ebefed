// Package render turns the world grid and the viewport offset into the
// byte stream of one terminal frame.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tilefield/internal/core"
)

// DefaultBufferSize is the output buffer capacity. It only tunes how many
// write calls a frame costs; any positive size produces the same bytes.
const DefaultBufferSize = core.DefaultBufferSize

// ErrOutputWrite reports a failed or short write to the terminal.
var ErrOutputWrite = errors.New("render: terminal write failed")

// Buffer accumulates the bytes of a frame and hands them to the terminal
// in as few writes as possible. Appending to a full buffer flushes it first.
type Buffer struct {
	w   io.Writer
	buf []byte // len(buf) is the cursor, cap(buf) the capacity

	written int64 // total bytes delivered to w
	writes  int64 // number of Write calls on w
}

// NewBuffer creates a buffer of the given capacity writing to w.
// A non-positive size selects DefaultBufferSize.
func NewBuffer(w io.Writer, size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{
		w:   w,
		buf: make([]byte, 0, size),
	}
}

// Append stores one byte, flushing first when the buffer is full.
func (b *Buffer) Append(c byte) error {
	if len(b.buf) == cap(b.buf) {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	b.buf = append(b.buf, c)
	return nil
}

// AppendString appends every byte of s.
func (b *Buffer) AppendString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := b.Append(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// AppendInt appends the decimal form of a non-negative integer.
// Negative values are written as 0.
func (b *Buffer) AppendInt(n int) error {
	if n < 0 {
		n = 0
	}
	var digits [20]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte(n%10) + '0'
		n /= 10
		if n == 0 {
			break
		}
	}
	for ; i < len(digits); i++ {
		if err := b.Append(digits[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes all buffered bytes in a single call and empties the buffer.
// It is a no-op when nothing is buffered. A short write is an error:
// frame bytes are never dropped silently.
func (b *Buffer) Flush() error {
	if len(b.buf) == 0 {
		return nil
	}

	n, err := b.w.Write(b.buf)
	b.writes++
	if n > 0 {
		b.written += int64(n)
	}
	if err != nil {
		b.buf = b.buf[:0]
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if n < len(b.buf) {
		short := len(b.buf) - n
		b.buf = b.buf[:0]
		return fmt.Errorf("%w: %w (%d bytes lost)", ErrOutputWrite, io.ErrShortWrite, short)
	}

	b.buf = b.buf[:0]
	return nil
}

// Buffered returns the number of bytes waiting to be flushed.
func (b *Buffer) Buffered() int {
	return len(b.buf)
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Written returns the total number of bytes delivered to the writer.
func (b *Buffer) Written() int64 {
	return b.written
}

// Writes returns the number of write calls issued to the writer.
func (b *Buffer) Writes() int64 {
	return b.writes
}
