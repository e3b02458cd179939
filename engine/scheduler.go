package engine

import "time"

// FrameCallback runs once before the next presented frame
// now is the host's monotonic timestamp for that frame
type FrameCallback func(now time.Time)

// FrameID identifies a pending frame request, zero means none
type FrameID uint64

// FrameScheduler is the host's one-shot per-frame callback mechanism
// A callback that wants another frame must request it again
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}

// ManualScheduler queues frame requests until the caller fires them
// Drives headless rendering and deterministic tests
type ManualScheduler struct {
	next    FrameID
	pending map[FrameID]FrameCallback
	order   []FrameID
}

// NewManualScheduler creates an empty scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[FrameID]FrameCallback)}
}

// RequestFrame queues cb for the next Fire
func (m *ManualScheduler) RequestFrame(cb FrameCallback) FrameID {
	m.next++
	m.pending[m.next] = cb
	m.order = append(m.order, m.next)
	return m.next
}

// CancelFrame drops a pending request, unknown ids are ignored
func (m *ManualScheduler) CancelFrame(id FrameID) {
	delete(m.pending, id)
}

// Pending returns the number of queued callbacks
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Fire runs the callbacks queued before the call, in request order
// Requests made while firing wait for the next Fire
func (m *ManualScheduler) Fire(now time.Time) int {
	batch := m.order
	m.order = nil

	fired := 0
	for _, id := range batch {
		cb, ok := m.pending[id]
		if !ok {
			continue
		}
		delete(m.pending, id)
		cb(now)
		fired++
	}
	return fired
}
