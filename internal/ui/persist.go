package ui

import tea "github.com/charmbracelet/bubbletea"

// OwnedSaver queues owned snapshots and writes the newest one.
type OwnedSaver interface {
	Queue(ids []int) uint64
	Flush() (int, bool)
}

// SaveWith adapts s to AppConfig.SaveOwned. The snapshot is queued while
// Update runs, so commands finishing out of order cannot write a stale list
// and whatever is still queued at exit can be flushed by the caller.
func SaveWith(s OwnedSaver) func(ids []int) tea.Cmd {
	return func(ids []int) tea.Cmd {
		s.Queue(ids)
		return func() tea.Msg {
			n, ok := s.Flush()
			if !ok {
				return nil
			}
			return OwnedSaved{Count: n}
		}
	}
}
