package background

import (
	"math"

	"github.com/lixenwraith/parallax/parameter"
)

// Star is a point particle in depth-centred space
// X, Y are offsets from the viewport centre at unit focal distance, Z is depth
type Star struct {
	X, Y   float64
	Z      float64
	Radius float64
	Speed  float64 // derived from Z, refreshed every step
}

// Projection is a star mapped to screen space for one frame
type Projection struct {
	X, Y    float64
	Radius  float64
	Alpha   float64
	Visible bool
}

// speedAt returns depth travelled per frame at depth z, inversely proportional to z
func (s *State) speedAt(z float64) float64 {
	return s.cfg.StarSpeed * s.MaxZ / math.Max(z, parameter.MinDepth)
}

// spawnStar redraws lateral position and radius and places the star at depth z
func (s *State) spawnStar(st *Star, z float64) {
	st.X = (s.rng.Float64() - 0.5) * s.Width
	st.Y = (s.rng.Float64() - 0.5) * s.Height
	st.Z = z
	st.Radius = s.cfg.StarRadius[0] + s.rng.Float64()*(s.cfg.StarRadius[1]-s.cfg.StarRadius[0])
	st.Speed = s.speedAt(z)
}

// randomDepth draws from (MinDepth, MaxZ]
func (s *State) randomDepth() float64 {
	span := s.MaxZ - parameter.MinDepth
	if span <= 0 {
		return s.MaxZ
	}
	return parameter.MinDepth + span*(1-s.rng.Float64())
}

// stepStar moves one star toward the viewer and recycles it past MinDepth
func (s *State) stepStar(st *Star) {
	st.Speed = s.speedAt(st.Z)
	st.Z -= st.Speed
	if st.Z < parameter.MinDepth {
		s.spawnStar(st, s.MaxZ)
	}
}

// Project maps a star through the pinhole transform
// Depth is clamped to MinDepth before division so the result is always finite
func (s *State) Project(st Star) Projection {
	z := math.Max(st.Z, parameter.MinDepth)
	k := s.Focal / z

	p := Projection{
		X:      st.X*k + s.Width/2,
		Y:      st.Y*k + s.Height/2,
		Radius: st.Radius * k,
		Alpha:  1 - z/s.MaxZ,
	}
	p.Alpha = math.Min(math.Max(p.Alpha, 0), 1)
	p.Visible = p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
	return p
}
