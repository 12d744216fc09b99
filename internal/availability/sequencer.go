package availability

import "sync/atomic"

// Sequencer is a monotonic guard for last-response-wins races: each refetch
// takes a sequence number before issuing the request, and only the newest
// completion is allowed to replace the displayed list. Opt-in; callers that
// skip it get the raw last-response-wins behavior.
type Sequencer struct {
	issued  atomic.Uint64
	applied atomic.Uint64
}

// Next reserves a sequence number for a request about to be issued.
func (s *Sequencer) Next() uint64 {
	return s.issued.Add(1)
}

// Accept reports whether a completion with the given sequence number may be
// applied, and records it when so. Stale completions return false.
func (s *Sequencer) Accept(seq uint64) bool {
	for {
		cur := s.applied.Load()
		if seq <= cur {
			return false
		}
		if s.applied.CompareAndSwap(cur, seq) {
			return true
		}
	}
}
