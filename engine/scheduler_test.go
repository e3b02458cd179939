package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerFiresInOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int

	s.RequestFrame(func(time.Time) { got = append(got, 1) })
	id := s.RequestFrame(func(time.Time) { got = append(got, 2) })
	s.RequestFrame(func(time.Time) { got = append(got, 3) })
	s.CancelFrame(id)
	s.CancelFrame(999)

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 2, s.Fire(time.Now()))
	assert.Equal(t, []int{1, 3}, got)
	assert.Zero(t, s.Pending())
}

func TestManualSchedulerDefersRearm(t *testing.T) {
	s := NewManualScheduler()
	calls := 0

	var cb FrameCallback
	cb = func(time.Time) {
		calls++
		s.RequestFrame(cb)
	}
	s.RequestFrame(cb)

	require.Equal(t, 1, s.Fire(time.Now()))
	assert.Equal(t, 1, calls, "re-armed callback waits for the next Fire")
	assert.Equal(t, 1, s.Pending())

	s.Fire(time.Now())
	assert.Equal(t, 2, calls)
}

func TestResizeListeners(t *testing.T) {
	var l ResizeListeners
	var got []string

	a := l.Add(func(w, h int) { got = append(got, "a") })
	l.Add(func(w, h int) { got = append(got, "b") })
	assert.Equal(t, 2, l.Len())

	l.Notify(10, 10)
	assert.Equal(t, []string{"a", "b"}, got)

	l.Remove(a)
	l.Remove(a)
	got = nil
	l.Notify(10, 10)
	assert.Equal(t, []string{"b"}, got)
	assert.Equal(t, 1, l.Len())
}

func TestResizeListenerMayRemoveItself(t *testing.T) {
	var l ResizeListeners
	var id ListenerID
	calls := 0
	id = l.Add(func(int, int) {
		calls++
		l.Remove(id)
	})

	l.Notify(1, 1)
	l.Notify(1, 1)
	assert.Equal(t, 1, calls)
	assert.Zero(t, l.Len())
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start, 16*time.Millisecond)

	assert.True(t, m.Now().Equal(start))
	assert.True(t, m.Tick().Equal(start.Add(16*time.Millisecond)))
	m.Advance(time.Second)
	assert.Equal(t, time.Second+16*time.Millisecond, m.Now().Sub(start))
}

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(2 * time.Millisecond)
	assert.True(t, p.Now().After(t1))
}

func TestHeadlessDisplayRasterDefault(t *testing.T) {
	d := NewHeadlessDisplay(32, 24, nil)
	assert.Nil(t, d.Surface())

	s, err := d.AcquireSurface()
	require.NoError(t, err)
	again, err := d.AcquireSurface()
	require.NoError(t, err)
	assert.Same(t, s, again)

	w, h := s.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 24, h)
}
