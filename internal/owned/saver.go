package owned

import "sync"

// Saver serializes writes of the owned selection. Queue records the latest
// snapshot and Flush writes it, so a snapshot is never overwritten by an
// older one no matter which order concurrent flushes run in.
type Saver struct {
	adapter *Adapter

	writeMu sync.Mutex // held across adapter writes

	mu      sync.Mutex
	queued  uint64
	written uint64
	pending []int
}

// NewSaver creates a Saver writing through a.
func NewSaver(a *Adapter) *Saver {
	return &Saver{adapter: a}
}

// Queue records ids as the newest selection and returns its sequence number.
func (s *Saver) Queue(ids []int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued++
	s.pending = append([]int(nil), ids...)
	return s.queued
}

// Flush writes the newest queued selection. It reports the number of ids
// written and false when nothing newer than the last write was queued.
func (s *Saver) Flush() (int, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.written >= s.queued {
		s.mu.Unlock()
		return 0, false
	}
	seq, ids := s.queued, s.pending
	s.mu.Unlock()

	s.adapter.Save(ids)

	s.mu.Lock()
	s.written = seq
	s.mu.Unlock()
	return len(ids), true
}
