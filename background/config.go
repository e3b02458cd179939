package background

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/render"
)

// Variant selects one of the background designs
type Variant string

const (
	// VariantStarfield is the perspective starfield over drifting pixel-space nebulae
	VariantStarfield Variant = "starfield"
	// VariantGlow integrates normalized orbs that oscillate inside the canvas
	VariantGlow Variant = "glow"
	// VariantOrbit moves orbs on closed-form Lissajous paths
	VariantOrbit Variant = "orbit"
)

// ParseVariant accepts a variant name case-insensitively
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantStarfield, VariantGlow, VariantOrbit:
		return v, nil
	case "":
		return VariantStarfield, nil
	default:
		return "", fmt.Errorf("unknown variant %q (use starfield, glow or orbit)", s)
	}
}

// ResizePolicy selects how a viewport change affects the simulation
type ResizePolicy string

const (
	// ResizeReset repopulates the simulation on every resize event
	ResizeReset ResizePolicy = "reset"
	// ResizeStretch ignores resize events and refits bounds at the top of each frame
	ResizeStretch ResizePolicy = "stretch"
)

// ParseResizePolicy accepts a policy name case-insensitively
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch p := ResizePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ResizeReset, ResizeStretch:
		return p, nil
	case "":
		return ResizeReset, nil
	default:
		return "", fmt.Errorf("unknown resize policy %q (use reset or stretch)", s)
	}
}

// Tint is the colour pair of one blob gradient
type Tint struct {
	Inner render.RGB
	Outer render.RGB
}

// Config holds the knobs of one simulation
type Config struct {
	Variant      Variant
	StarCount    int
	BlobCount    int
	FocalLength  float64
	StarSpeed    float64
	StarRadius   [2]float64 // min, max
	ResizePolicy ResizePolicy
	ClearColor   render.RGB
	Palette      []Tint
	Seed         uint64 // 0 seeds from the clock
}

var (
	starfieldPalette = []Tint{
		{Inner: render.MustParseHex("#8a2be2"), Outer: render.MustParseHex("#4b0082")},
		{Inner: render.MustParseHex("#1e90ff"), Outer: render.MustParseHex("#00008b")},
		{Inner: render.MustParseHex("#ff1493"), Outer: render.MustParseHex("#8b008b")},
	}
	glowPalette = []Tint{
		{Inner: render.MustParseHex("#3b82f6"), Outer: render.MustParseHex("#1e3a8a")},
		{Inner: render.MustParseHex("#a855f7"), Outer: render.MustParseHex("#581c87")},
		{Inner: render.MustParseHex("#06b6d4"), Outer: render.MustParseHex("#164e63")},
	}
)

// DefaultConfig returns the tuned defaults of a variant
func DefaultConfig(v Variant) Config {
	cfg := Config{
		Variant:      v,
		FocalLength:  parameter.FocalLength,
		StarSpeed:    parameter.StarSpeed,
		StarRadius:   [2]float64{parameter.StarRadiusMin, parameter.StarRadiusMax},
		ResizePolicy: ResizeReset,
		ClearColor:   render.MustParseHex("#05060f"),
	}

	switch v {
	case VariantGlow:
		cfg.StarCount = parameter.GlowStarCount
		cfg.BlobCount = parameter.GlowBlobCount
		cfg.ClearColor = render.MustParseHex("#0b1020")
		cfg.Palette = append([]Tint(nil), glowPalette...)
	case VariantOrbit:
		cfg.StarCount = parameter.OrbitStarCount
		cfg.BlobCount = parameter.OrbitBlobCount
		cfg.ClearColor = render.MustParseHex("#0b1020")
		cfg.Palette = append([]Tint(nil), glowPalette...)
	default:
		cfg.Variant = VariantStarfield
		cfg.StarCount = parameter.StarfieldStarCount
		cfg.BlobCount = parameter.StarfieldBlobCount
		cfg.Palette = append([]Tint(nil), starfieldPalette...)
	}

	return cfg
}

// Validate reports every unusable knob
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseVariant(string(c.Variant)); err != nil || c.Variant == "" {
		errs = append(errs, fmt.Errorf("variant: %q", c.Variant))
	}
	if _, err := ParseResizePolicy(string(c.ResizePolicy)); err != nil || c.ResizePolicy == "" {
		errs = append(errs, fmt.Errorf("resize policy: %q", c.ResizePolicy))
	}
	if c.StarCount < 0 {
		errs = append(errs, fmt.Errorf("star count must be >= 0, got %d", c.StarCount))
	}
	if c.BlobCount < 0 {
		errs = append(errs, fmt.Errorf("blob count must be >= 0, got %d", c.BlobCount))
	}
	if c.BlobCount > 0 && len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty when blobs are enabled"))
	}
	if c.FocalLength <= 0 {
		errs = append(errs, fmt.Errorf("focal length must be > 0, got %g", c.FocalLength))
	}
	if c.StarSpeed <= 0 {
		errs = append(errs, fmt.Errorf("star speed must be > 0, got %g", c.StarSpeed))
	}
	if c.StarRadius[0] <= 0 || c.StarRadius[1] < c.StarRadius[0] {
		errs = append(errs, fmt.Errorf("star radius range invalid: %v", c.StarRadius))
	}
	return errors.Join(errs...)
}
