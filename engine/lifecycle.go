package engine

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/parallax/background"
	"github.com/lixenwraith/parallax/render"
)

var (
	// ErrSurfaceUnavailable means the display could not provide a drawable surface
	// The background stays unmounted and the host continues without animation
	ErrSurfaceUnavailable = errors.New("drawable surface unavailable")
	// ErrAlreadyMounted is returned by Mount on a mounted background
	ErrAlreadyMounted = errors.New("background already mounted")
	// ErrInvalidTransition marks a rejected lifecycle phase change
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)

// Phase is the lifecycle state of a background
type Phase uint8

const (
	PhaseUnmounted Phase = iota
	PhaseInitialized
	PhaseRunning
	PhaseResizing
	PhaseTeardown
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "Unmounted"
	case PhaseInitialized:
		return "Initialized"
	case PhaseRunning:
		return "Running"
	case PhaseResizing:
		return "Resizing"
	case PhaseTeardown:
		return "Teardown"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

var validTransitions = map[Phase][]Phase{
	PhaseUnmounted:   {PhaseInitialized},
	PhaseInitialized: {PhaseRunning, PhaseTeardown},
	PhaseRunning:     {PhaseResizing, PhaseTeardown},
	PhaseResizing:    {PhaseRunning, PhaseTeardown},
	PhaseTeardown:    {PhaseUnmounted},
}

// CanTransition checks whether from -> to is a legal phase change
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Stats counts work done by a background across its mounts
type Stats struct {
	Frames uint64
	Resets uint64
	Last   background.FrameStats
}

// Background is the animated background component
// It owns one simulation state and one surface for the duration of a mount
type Background struct {
	cfg      background.Config
	renderer *background.Renderer
	logger   *zap.Logger

	phase      Phase
	display    Display
	surface    render.Surface
	state      *background.State
	frameID    FrameID
	listenerID ListenerID
	mountedAt  time.Time

	stats Stats
}

// NewBackground validates cfg and creates an unmounted background
func NewBackground(cfg background.Config, logger *zap.Logger) (*Background, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("background config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Background{
		cfg:      cfg,
		renderer: background.NewRenderer(cfg.ClearColor),
		logger:   logger.Named("background"),
	}, nil
}

// Phase returns the current lifecycle phase
func (b *Background) Phase() Phase {
	return b.phase
}

// State returns the mounted simulation, nil when unmounted
func (b *Background) State() *background.State {
	return b.state
}

// Stats returns frame and reset counters
func (b *Background) Stats() Stats {
	return b.stats
}

// transition moves to a new phase if the state machine allows it
func (b *Background) transition(to Phase) bool {
	if !CanTransition(b.phase, to) {
		b.logger.Error("rejected phase change",
			zap.Stringer("from", b.phase),
			zap.Stringer("to", to),
			zap.Error(ErrInvalidTransition))
		return false
	}
	b.logger.Debug("phase", zap.Stringer("from", b.phase), zap.Stringer("to", to))
	b.phase = to
	return true
}

// Mount acquires a surface from d, populates the simulation and schedules the first frame
// On surface failure the background stays unmounted and the error wraps ErrSurfaceUnavailable
func (b *Background) Mount(d Display) error {
	if b.phase != PhaseUnmounted {
		return ErrAlreadyMounted
	}

	surf, err := d.AcquireSurface()
	if err != nil {
		b.logger.Warn("surface acquisition failed, animation disabled", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	w, h := d.Size()
	if err := surf.Resize(w, h); err != nil {
		b.logger.Warn("surface sizing failed, animation disabled",
			zap.Int("width", w), zap.Int("height", h), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	state, err := background.NewState(b.cfg)
	if err != nil {
		return err
	}
	if err := state.Reset(w, h); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	b.display = d
	b.surface = surf
	b.state = state
	b.mountedAt = time.Time{}
	b.transition(PhaseInitialized)

	if b.cfg.ResizePolicy == background.ResizeStretch {
		// Stretch refits at the top of each frame instead
		b.listenerID = d.AddResizeListener(func(int, int) {})
	} else {
		b.listenerID = d.AddResizeListener(b.onResize)
	}

	b.frameID = d.RequestFrame(b.frame)
	b.transition(PhaseRunning)

	b.logger.Info("mounted",
		zap.String("variant", string(b.cfg.Variant)),
		zap.Stringer("motion", state.Motion().Kind()),
		zap.String("resize", string(b.cfg.ResizePolicy)),
		zap.Int("width", w), zap.Int("height", h),
		zap.Int("stars", len(state.Stars)), zap.Int("blobs", len(state.Blobs)),
		zap.Stringer("clear", b.cfg.ClearColor))
	return nil
}

// frame is the self-rescheduling frame callback
func (b *Background) frame(now time.Time) {
	if b.phase != PhaseRunning {
		return
	}
	b.frameID = 0

	if b.mountedAt.IsZero() {
		b.mountedAt = now
	}

	if b.cfg.ResizePolicy == background.ResizeStretch {
		b.refit()
	}

	b.state.Step(now.Sub(b.mountedAt))
	b.stats.Last = b.renderer.Draw(b.surface, b.state)
	b.stats.Frames++

	b.frameID = b.display.RequestFrame(b.frame)
}

// refit re-applies display dimensions, used by the stretch policy
func (b *Background) refit() {
	w, h := b.display.Size()
	if b.state.Sized(w, h) {
		return
	}
	if err := b.surface.Resize(w, h); err != nil {
		b.logger.Debug("refit skipped", zap.Int("width", w), zap.Int("height", h), zap.Error(err))
		return
	}
	if err := b.state.Fit(w, h); err != nil {
		b.logger.Debug("refit skipped", zap.Error(err))
	}
}

// onResize applies the reset policy synchronously between frames
func (b *Background) onResize(width, height int) {
	if b.phase != PhaseRunning {
		return
	}
	if !b.transition(PhaseResizing) {
		return
	}
	defer b.transition(PhaseRunning)

	if err := b.surface.Resize(width, height); err != nil {
		b.logger.Debug("resize ignored", zap.Int("width", width), zap.Int("height", height), zap.Error(err))
		return
	}
	if err := b.state.Reset(width, height); err != nil {
		b.logger.Debug("reset ignored", zap.Error(err))
		return
	}
	b.stats.Resets++
	b.logger.Debug("reset on resize", zap.Int("width", width), zap.Int("height", height))
}

// Unmount cancels the pending frame, then removes the resize listener, then releases the surface
// Safe to call on an unmounted background
func (b *Background) Unmount() {
	if b.phase == PhaseUnmounted {
		return
	}
	b.transition(PhaseTeardown)

	if b.frameID != 0 {
		b.display.CancelFrame(b.frameID)
		b.frameID = 0
	}
	if b.listenerID != 0 {
		b.display.RemoveResizeListener(b.listenerID)
		b.listenerID = 0
	}

	b.display = nil
	b.surface = nil
	b.state = nil
	b.transition(PhaseUnmounted)

	b.logger.Info("unmounted",
		zap.Uint64("frames", b.stats.Frames),
		zap.Uint64("resets", b.stats.Resets))
}
