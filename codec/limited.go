package codec

import (
	"errors"
	"io"
)

// ErrLimitExceeded is returned when a limited reader or writer runs over its
// byte budget. It aborts the whole encode or decode: callers must not treat a
// partially transferred value as usable.
var ErrLimitExceeded = errors.New("size limit exceeded")

// LimitedReader forwards reads to R until N cumulative bytes have been
// consumed. A read attempted past that point fails with ErrLimitExceeded
// before any over-budget byte reaches the caller. Requests are capped to the
// remaining budget, so a stream that ends within the limit is read normally.
//
// Each decode owns its own LimitedReader; the counter is not shared between
// calls and the type is not safe for concurrent use.
type LimitedReader struct {
	R io.Reader
	N uint64 // remaining budget in bytes
}

// NewLimitedReader wraps r with a cumulative byte limit.
func NewLimitedReader(r io.Reader, limit uint64) *LimitedReader {
	return &LimitedReader{R: r, N: limit}
}

func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.N == 0 {
		return 0, ErrLimitExceeded
	}
	if uint64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.R.Read(p)
	l.N -= uint64(n)
	return n, err
}

// LimitedWriter forwards writes to W until N cumulative bytes have been
// written. A write that would cross the limit fails with ErrLimitExceeded and
// is not forwarded, even partially.
type LimitedWriter struct {
	W io.Writer
	N uint64 // remaining budget in bytes
}

// NewLimitedWriter wraps w with a cumulative byte limit.
func NewLimitedWriter(w io.Writer, limit uint64) *LimitedWriter {
	return &LimitedWriter{W: w, N: limit}
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	if uint64(len(p)) > l.N {
		return 0, ErrLimitExceeded
	}
	n, err := l.W.Write(p)
	l.N -= uint64(n)
	return n, err
}
