package export

import "sync/atomic"

// Sequencer numbers preview requests. The engine never cancels an in-flight
// render; callers compare a reply's sequence against the latest issued one
// and discard stale results.
type Sequencer struct {
	n atomic.Uint64
}

// Next returns a monotonically increasing request number.
func (s *Sequencer) Next() uint64 {
	return s.n.Add(1)
}

// Latest returns the most recently issued number.
func (s *Sequencer) Latest() uint64 {
	return s.n.Load()
}
