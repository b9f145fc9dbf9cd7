package testutil

import (
	"errors"
	"time"
)

// ErrInjected is the default error returned by injected faults.
var ErrInjected = errors.New("injected fault error")

// ChunkSource is a scripted readable handle. Data becomes readable once per
// Interval of fake time and every Read yields at most Chunk bytes.
type ChunkSource struct {
	Clock    *FakeClock
	Chunk    int
	Interval time.Duration

	// FailReadAfter makes the n-th Read (1-based) fail with ReadErr. 0 disables.
	FailReadAfter int
	ReadErr       error
	// FailWait makes every WaitReadable fail with WaitErr.
	FailWait bool
	WaitErr  error

	// Waits records the timeout of every WaitReadable call.
	Waits []time.Duration
	Reads int

	next byte
}

// NewChunkSource creates a ChunkSource yielding chunk bytes every interval.
func NewChunkSource(clock *FakeClock, chunk int, interval time.Duration) *ChunkSource {
	return &ChunkSource{Clock: clock, Chunk: chunk, Interval: interval}
}

// WaitReadable waits up to timeout of fake time for the next chunk.
// A negative timeout waits indefinitely.
func (s *ChunkSource) WaitReadable(timeout time.Duration) (bool, error) {
	s.Waits = append(s.Waits, timeout)
	if s.FailWait {
		if s.WaitErr != nil {
			return false, s.WaitErr
		}
		return false, ErrInjected
	}
	if timeout >= 0 && timeout < s.Interval {
		s.Clock.Advance(timeout)
		return false, nil
	}
	s.Clock.Advance(s.Interval)
	return true, nil
}

// Read fills p with at most Chunk bytes of an incrementing pattern.
func (s *ChunkSource) Read(p []byte) (int, error) {
	s.Reads++
	if s.FailReadAfter > 0 && s.Reads >= s.FailReadAfter {
		if s.ReadErr != nil {
			return 0, s.ReadErr
		}
		return 0, ErrInjected
	}
	n := min(len(p), s.Chunk)
	for i := range n {
		p[i] = s.next
		s.next++
	}
	return n, nil
}

// ChunkWriter accepts at most Limit bytes per Write and records every call.
type ChunkWriter struct {
	Limit int
	Calls []int
	Data  []byte

	// FailAt makes the n-th Write (1-based) fail. 0 disables.
	FailAt int
	Err    error
}

// NewChunkWriter creates a ChunkWriter accepting limit bytes per call.
func NewChunkWriter(limit int) *ChunkWriter {
	return &ChunkWriter{Limit: limit}
}

// Write stores up to Limit bytes of p.
func (w *ChunkWriter) Write(p []byte) (int, error) {
	if w.FailAt > 0 && len(w.Calls)+1 >= w.FailAt {
		w.Calls = append(w.Calls, 0)
		if w.Err != nil {
			return 0, w.Err
		}
		return 0, ErrInjected
	}
	n := min(len(p), w.Limit)
	w.Calls = append(w.Calls, n)
	w.Data = append(w.Data, p[:n]...)
	return n, nil
}
