// Package terminal hosts a background in a tcell screen
// Each cell shows two vertically stacked pixels through the upper half block glyph
package terminal

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/parallax/engine"
	"github.com/lixenwraith/parallax/render"
)

const halfBlock = '▀'

// Host is an engine.Display backed by a tcell screen
// All Display methods must be called from the goroutine running Run, or before Run starts
type Host struct {
	screen tcell.Screen
	budget time.Duration
	clock  engine.TimeProvider
	logger *zap.Logger

	frames    *engine.ManualScheduler
	listeners engine.ResizeListeners
	surface   *render.CellSurface

	cols, rows int
	lastFrame  time.Time
	presented  uint64

	events    chan tcell.Event
	pumpErr   chan error
	quit      chan struct{}
	pumpDone  chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
	finiOnce  sync.Once
}

// NewScreen creates and initializes the controlling terminal screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// New wraps an initialized screen, frames are paced to at most one per budget
func New(screen tcell.Screen, budget time.Duration, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen.HideCursor()
	cols, rows := screen.Size()
	return &Host{
		screen:   screen,
		budget:   budget,
		clock:    engine.NewMonotonicTimeProvider(),
		logger:   logger.Named("terminal"),
		frames:   engine.NewManualScheduler(),
		cols:     cols,
		rows:     rows,
		events:   make(chan tcell.Event, 64),
		pumpErr:  make(chan error, 1),
		quit:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
}

// Size returns the pixel viewport, two pixels per cell row
func (h *Host) Size() (int, int) {
	return h.cols, h.rows * 2
}

// AcquireSurface returns the cell surface presented after every frame
func (h *Host) AcquireSurface() (render.Surface, error) {
	if h.surface != nil {
		return h.surface, nil
	}
	w, ht := h.Size()
	s, err := render.NewCellSurface(w, ht)
	if err != nil {
		return nil, err
	}
	h.surface = s
	return s, nil
}

func (h *Host) RequestFrame(cb engine.FrameCallback) engine.FrameID {
	return h.frames.RequestFrame(cb)
}

func (h *Host) CancelFrame(id engine.FrameID) {
	h.frames.CancelFrame(id)
}

func (h *Host) AddResizeListener(fn engine.ResizeListener) engine.ListenerID {
	return h.listeners.Add(fn)
}

func (h *Host) RemoveResizeListener(id engine.ListenerID) {
	h.listeners.Remove(id)
}

// SetTimeProvider replaces the frame clock
func (h *Host) SetTimeProvider(tp engine.TimeProvider) {
	h.clock = tp
}

// Presented returns the number of frames shown on screen
func (h *Host) Presented() uint64 {
	return h.presented
}

// Run drives the frame loop until ctx is done or the user quits
// Quit keys are q, Escape and Ctrl-C
func (h *Host) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.Close()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPARALLAX CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			err = fmt.Errorf("terminal host panic: %v", r)
		}
	}()

	h.startOnce.Do(func() { go h.pump() })

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	armed := false

	for {
		// Self re-arming: the next frame waits out the rest of the budget
		if !armed && h.frames.Pending() > 0 {
			timer.Reset(h.delay())
			armed = true
		}
		var tick <-chan time.Time
		if armed {
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case ev := <-h.events:
			if !h.handle(ev) {
				return nil
			}
		case err := <-h.pumpErr:
			return err
		case <-tick:
			armed = false
			h.fire()
		}
	}
}

// Close restores the terminal and waits for the event pump, safe to call repeatedly
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.quit)
		h.fini()
		started := true
		h.startOnce.Do(func() { started = false })
		if started {
			<-h.pumpDone
		}
	})
}

// fini restores the terminal once, whichever goroutine gets there first
func (h *Host) fini() {
	h.finiOnce.Do(h.screen.Fini)
}

// pump forwards screen events until the screen is finalized
// A panic restores the terminal and stops Run with an error
func (h *Host) pump() {
	defer close(h.pumpDone)
	defer func() {
		if r := recover(); r != nil {
			h.fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT PUMP CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			h.pumpErr <- fmt.Errorf("event pump panic: %v", r)
		}
	}()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.quit:
			return
		}
	}
}

func (h *Host) delay() time.Duration {
	if h.lastFrame.IsZero() {
		return 0
	}
	d := h.budget - h.clock.Now().Sub(h.lastFrame)
	if d < 0 {
		return 0
	}
	return d
}

// handle returns false when the loop should stop
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			h.logger.Debug("quit requested")
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.resize(cols, rows)
	}
	return true
}

func isQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// resize records the new cell grid and notifies listeners in pixels
func (h *Host) resize(cols, rows int) {
	if cols == h.cols && rows == h.rows {
		return
	}
	h.cols, h.rows = cols, rows
	h.screen.Sync()
	h.logger.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
	h.listeners.Notify(h.Size())
}

// fire runs due callbacks and presents the surface if any ran
func (h *Host) fire() {
	now := h.clock.Now()
	h.lastFrame = now
	if h.frames.Fire(now) > 0 {
		h.present()
	}
}

// present maps pixel pairs onto half block cells
func (h *Host) present() {
	if h.surface == nil {
		return
	}
	w, ht := h.surface.Size()
	for y := 0; y < h.rows; y++ {
		for x := 0; x < h.cols; x++ {
			top, bottom := render.RGBBlack, render.RGBBlack
			if x < w && 2*y < ht {
				top = h.surface.Pixel(x, 2*y)
			}
			if x < w && 2*y+1 < ht {
				bottom = h.surface.Pixel(x, 2*y+1)
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	h.screen.Show()
	h.presented++
}

func tcellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
