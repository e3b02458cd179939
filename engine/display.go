package engine

import (
	"github.com/lixenwraith/parallax/render"
)

// ResizeListener receives the new viewport size in pixels
type ResizeListener func(width, height int)

// ListenerID identifies a registered resize listener, zero means none
type ListenerID uint64

// Display is the parent shell a background mounts into
// All methods and callbacks run on the host's single loop goroutine
type Display interface {
	FrameScheduler

	// Size returns the current viewport in physical pixels
	Size() (width, height int)
	// AcquireSurface returns the drawable surface presented by the host
	AcquireSurface() (render.Surface, error)

	AddResizeListener(fn ResizeListener) ListenerID
	RemoveResizeListener(id ListenerID)
}

// ResizeListeners is an ordered listener registry shared by hosts
type ResizeListeners struct {
	next  ListenerID
	fns   map[ListenerID]ResizeListener
	order []ListenerID
}

// Add registers fn and returns its id
func (l *ResizeListeners) Add(fn ResizeListener) ListenerID {
	if l.fns == nil {
		l.fns = make(map[ListenerID]ResizeListener)
	}
	l.next++
	l.fns[l.next] = fn
	l.order = append(l.order, l.next)
	return l.next
}

// Remove deregisters id, unknown ids are ignored
func (l *ResizeListeners) Remove(id ListenerID) {
	if _, ok := l.fns[id]; !ok {
		return
	}
	delete(l.fns, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered listeners
func (l *ResizeListeners) Len() int {
	return len(l.fns)
}

// Notify calls every listener in registration order
func (l *ResizeListeners) Notify(width, height int) {
	ids := append([]ListenerID(nil), l.order...)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(width, height)
		}
	}
}

// SurfaceFactory allocates a surface for a headless display
type SurfaceFactory func(width, height int) (render.Surface, error)

// RasterSurfaceFactory backs headless displays with an anti-aliased raster
func RasterSurfaceFactory(width, height int) (render.Surface, error) {
	return render.NewRasterSurface(width, height)
}

// HeadlessDisplay is a fixed-size display driven by a ManualScheduler
type HeadlessDisplay struct {
	*ManualScheduler

	width, height int
	factory       SurfaceFactory
	surface       render.Surface
	listeners     ResizeListeners
}

// NewHeadlessDisplay creates a display of width x height, nil factory uses the raster surface
func NewHeadlessDisplay(width, height int, factory SurfaceFactory) *HeadlessDisplay {
	if factory == nil {
		factory = RasterSurfaceFactory
	}
	return &HeadlessDisplay{
		ManualScheduler: NewManualScheduler(),
		width:           width,
		height:          height,
		factory:         factory,
	}
}

// Size returns the viewport
func (d *HeadlessDisplay) Size() (int, int) {
	return d.width, d.height
}

// AcquireSurface allocates the surface on first use
func (d *HeadlessDisplay) AcquireSurface() (render.Surface, error) {
	if d.surface != nil {
		return d.surface, nil
	}
	s, err := d.factory(d.width, d.height)
	if err != nil {
		return nil, err
	}
	d.surface = s
	return s, nil
}

// Surface returns the acquired surface, nil before AcquireSurface
func (d *HeadlessDisplay) Surface() render.Surface {
	return d.surface
}

func (d *HeadlessDisplay) AddResizeListener(fn ResizeListener) ListenerID {
	return d.listeners.Add(fn)
}

func (d *HeadlessDisplay) RemoveResizeListener(id ListenerID) {
	d.listeners.Remove(id)
}

// Listeners returns the number of registered resize listeners
func (d *HeadlessDisplay) Listeners() int {
	return d.listeners.Len()
}

// Resize changes the viewport and dispatches listeners synchronously
func (d *HeadlessDisplay) Resize(width, height int) {
	d.width, d.height = width, height
	d.listeners.Notify(width, height)
}
