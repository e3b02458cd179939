package background

import (
	"math"

	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/render"
)

// Space is the coordinate space of a blob
type Space uint8

const (
	// SpacePixel positions and radius are in viewport pixels
	SpacePixel Space = iota
	// SpaceNormalized positions are in [0,1], radius is a fraction of min(width, height)
	SpaceNormalized
)

// Orbit holds the closed-form motion law of a blob
type Orbit struct {
	CenterX, CenterY float64
	AmpX, AmpY       float64
	Freq             float64 // radians per second
	Phase            float64
}

// Blob is a soft radial-gradient field element (nebula or orb)
type Blob struct {
	Space      Space
	X, Y       float64
	Radius     float64
	VX, VY     float64
	Inner      render.RGB
	Outer      render.RGB
	InnerAlpha float64
	OuterAlpha float64
	Orbit      Orbit
}

// orbitYRatio detunes the vertical frequency so paths trace Lissajous figures
const orbitYRatio = 0.7

// BlobGeometry returns centre and radius in viewport pixels
func (s *State) BlobGeometry(b *Blob) (x, y, r float64) {
	if b.Space == SpaceNormalized {
		return b.X * s.Width, b.Y * s.Height, b.Radius * math.Min(s.Width, s.Height)
	}
	return b.X, b.Y, b.Radius
}

// GradientStops builds the centre, mid and transparent outer stops
func (b *Blob) GradientStops() []render.GradientStop {
	return []render.GradientStop{
		{Offset: 0, Color: b.Inner, Alpha: b.InnerAlpha},
		{Offset: parameter.GradientMidOffset, Color: b.Outer, Alpha: b.OuterAlpha},
		{Offset: 1, Color: b.Outer, Alpha: 0},
	}
}

// drift returns a uniform velocity component in [-limit, limit)
func (s *State) drift(limit float64) float64 {
	return (s.rng.Float64()*2 - 1) * limit
}

func (s *State) pickTint() Tint {
	return s.cfg.Palette[s.rng.IntN(len(s.cfg.Palette))]
}

// spawnBlob initializes a blob for the configured variant
func (s *State) spawnBlob(b *Blob) {
	tint := s.pickTint()
	*b = Blob{Inner: tint.Inner, Outer: tint.Outer}

	switch s.cfg.Variant {
	case VariantGlow:
		b.Space = SpaceNormalized
		b.X = s.rng.Float64()
		b.Y = s.rng.Float64()
		b.Radius = parameter.OrbRadiusMinFrac + s.rng.Float64()*(parameter.OrbRadiusMaxFrac-parameter.OrbRadiusMinFrac)
		b.VX = s.drift(parameter.OrbDriftMax)
		b.VY = s.drift(parameter.OrbDriftMax)
		b.InnerAlpha = parameter.OrbInnerAlpha
		b.OuterAlpha = parameter.OrbOuterAlpha

	case VariantOrbit:
		b.Space = SpaceNormalized
		b.Radius = parameter.OrbRadiusMinFrac + s.rng.Float64()*(parameter.OrbRadiusMaxFrac-parameter.OrbRadiusMinFrac)
		b.Orbit = Orbit{
			CenterX: 0.4 + 0.2*s.rng.Float64(),
			CenterY: 0.4 + 0.2*s.rng.Float64(),
			AmpX:    parameter.OrbitAmpMax * (0.4 + 0.6*s.rng.Float64()),
			AmpY:    parameter.OrbitAmpMax * (0.4 + 0.6*s.rng.Float64()),
			Freq:    parameter.OrbitFreqMin + s.rng.Float64()*(parameter.OrbitFreqMax-parameter.OrbitFreqMin),
			Phase:   s.rng.Float64() * 2 * math.Pi,
		}
		b.InnerAlpha = parameter.OrbInnerAlpha
		b.OuterAlpha = parameter.OrbOuterAlpha
		b.place(s.Time)

	default:
		b.Space = SpacePixel
		b.X = s.rng.Float64() * s.Width
		b.Y = s.rng.Float64() * s.Height
		b.Radius = s.Width * (parameter.NebulaRadiusMinFrac + s.rng.Float64()*(parameter.NebulaRadiusMaxFrac-parameter.NebulaRadiusMinFrac))
		b.VX = s.drift(parameter.NebulaDriftMax)
		b.VY = s.drift(parameter.NebulaDriftMax)
		b.InnerAlpha = parameter.NebulaInnerAlpha
		b.OuterAlpha = parameter.NebulaOuterAlpha
	}
}

// place evaluates the orbit at time t (seconds)
func (b *Blob) place(t float64) {
	o := &b.Orbit
	b.X = o.CenterX + o.AmpX*math.Sin(t*o.Freq+o.Phase)
	b.Y = o.CenterY + o.AmpY*math.Cos(t*o.Freq*orbitYRatio+o.Phase)
}

// wrap teleports a pixel-space blob that fully left the canvas to the opposite edge
// A blob with any part still on the canvas is not wrapped
func (b *Blob) wrap(width, height float64) {
	switch {
	case b.X-b.Radius > width:
		b.X = -b.Radius
	case b.X+b.Radius < 0:
		b.X = width + b.Radius
	}
	switch {
	case b.Y-b.Radius > height:
		b.Y = -b.Radius
	case b.Y+b.Radius < 0:
		b.Y = height + b.Radius
	}
}

// bounce reflects a normalized blob back into [0,1]
func (b *Blob) bounce() {
	switch {
	case b.X < 0:
		b.X = -b.X
		b.VX = math.Abs(b.VX)
	case b.X > 1:
		b.X = 2 - b.X
		b.VX = -math.Abs(b.VX)
	}
	switch {
	case b.Y < 0:
		b.Y = -b.Y
		b.VY = math.Abs(b.VY)
	case b.Y > 1:
		b.Y = 2 - b.Y
		b.VY = -math.Abs(b.VY)
	}
}
