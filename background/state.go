package background

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ErrEmptyViewport is returned when the simulation is sized to zero pixels
var ErrEmptyViewport = errors.New("viewport has no area")

// State is the full simulation owned by one mounted background
type State struct {
	Stars []Star
	Blobs []Blob

	Width, Height float64
	MaxZ          float64 // equals Width
	Focal         float64

	Frame uint64  // steps taken since the last reset
	Time  float64 // seconds since mount, never decreases

	cfg    Config
	motion Motion
	rng    *rand.Rand
}

// NewState validates cfg and allocates an unpopulated state
// Reset must be called before the first Step
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid background config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &State{
		Stars:  make([]Star, cfg.StarCount),
		Blobs:  make([]Blob, cfg.BlobCount),
		Focal:  cfg.FocalLength,
		cfg:    cfg,
		motion: MotionFor(cfg.Variant),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Config returns the configuration the state was built with
func (s *State) Config() Config {
	return s.cfg
}

// Motion returns the state's motion strategy
func (s *State) Motion() Motion {
	return s.motion
}

// Reset repopulates all stars and blobs for a width x height viewport
// Population sizes never change; calling it repeatedly is safe
func (s *State) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("reset %dx%d: %w", width, height, ErrEmptyViewport)
	}

	s.setBounds(width, height)
	s.Frame = 0

	for i := range s.Stars {
		s.spawnStar(&s.Stars[i], s.randomDepth())
	}
	for i := range s.Blobs {
		s.spawnBlob(&s.Blobs[i])
	}
	return nil
}

// Fit updates bounds without repopulating, used by the stretch resize policy
// Depths beyond the new MaxZ are clamped to keep Z in (0, MaxZ]
func (s *State) Fit(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fit %dx%d: %w", width, height, ErrEmptyViewport)
	}

	s.setBounds(width, height)

	for i := range s.Stars {
		st := &s.Stars[i]
		if st.Z > s.MaxZ {
			st.Z = s.MaxZ
		}
		st.Speed = s.speedAt(st.Z)
	}
	for i := range s.Blobs {
		if s.Blobs[i].Space == SpacePixel {
			s.Blobs[i].wrap(s.Width, s.Height)
		}
	}
	return nil
}

// Sized reports whether the state bounds match width x height
func (s *State) Sized(width, height int) bool {
	return s.Width == float64(width) && s.Height == float64(height)
}

func (s *State) setBounds(width, height int) {
	s.Width = float64(width)
	s.Height = float64(height)
	s.MaxZ = s.Width
}

// Step advances the simulation by exactly one frame
// elapsed is the time since mount; only the closed-form motion reads it
func (s *State) Step(elapsed time.Duration) {
	s.Frame++
	s.Time = math.Max(s.Time, elapsed.Seconds())

	for i := range s.Stars {
		s.stepStar(&s.Stars[i])
	}
	s.motion.Advance(s)
}
