// Package window hosts a background in a desktop window through ebiten
package window

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/parallax/engine"
	"github.com/lixenwraith/parallax/render"
)

// Host is an engine.Display and ebiten.Game
// Frame callbacks fire from Update, the raster is uploaded in Draw
type Host struct {
	title  string
	budget time.Duration
	clock  engine.TimeProvider
	logger *zap.Logger

	frames    *engine.ManualScheduler
	listeners engine.ResizeListeners
	surface   *render.RasterSurface
	canvas    *ebiten.Image
	dirty     bool

	width, height int
	quit          atomic.Bool
}

// New creates a window host with an initial logical size
func New(width, height int, title string, budget time.Duration, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		title:  title,
		budget: budget,
		clock:  engine.NewMonotonicTimeProvider(),
		logger: logger.Named("window"),
		frames: engine.NewManualScheduler(),
		width:  width,
		height: height,
	}
}

func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// AcquireSurface returns the anti-aliased raster uploaded every drawn frame
func (h *Host) AcquireSurface() (render.Surface, error) {
	if h.surface != nil {
		return h.surface, nil
	}
	s, err := render.NewRasterSurface(h.width, h.height)
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

// Update fires pending frame callbacks once per tick
func (h *Host) Update() error {
	if h.quit.Load() || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	h.step(h.clock.Now())
	return nil
}

func (h *Host) step(now time.Time) {
	if h.frames.Fire(now) > 0 {
		h.dirty = true
	}
}

// Draw uploads the raster when a frame rendered since the last draw
func (h *Host) Draw(screen *ebiten.Image) {
	if h.surface == nil {
		return
	}
	img := h.surface.Image()
	w, ht := img.Bounds().Dx(), img.Bounds().Dy()
	if h.canvas == nil || h.canvas.Bounds().Dx() != w || h.canvas.Bounds().Dy() != ht {
		if h.canvas != nil {
			h.canvas.Deallocate()
		}
		h.canvas = ebiten.NewImage(w, ht)
		h.dirty = true
	}
	if h.dirty {
		h.canvas.WritePixels(img.Pix)
		h.dirty = false
	}
	screen.DrawImage(h.canvas, nil)
}

// Layout tracks the window size and notifies listeners when it changes
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != h.width || outsideHeight != h.height) {
		h.width, h.height = outsideWidth, outsideHeight
		h.logger.Debug("resize", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
		h.listeners.Notify(outsideWidth, outsideHeight)
	}
	return h.width, h.height
}

// Run opens the window and blocks until it closes or ctx is done
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			h.quit.Store(true)
		case <-done:
		}
	}()

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps(h.budget))

	return ebiten.RunGame(h)
}

// tps converts a frame budget into ebiten ticks per second
func tps(budget time.Duration) int {
	if budget <= 0 {
		return ebiten.DefaultTPS
	}
	n := int(time.Second / budget)
	if n < 1 {
		return 1
	}
	return n
}
