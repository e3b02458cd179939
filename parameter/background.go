package parameter

import "time"

// Starfield
const (
	// MinDepth is the depth below which a star respawns, also the projection divisor floor
	MinDepth = 1.0

	// FocalLength is the pinhole projection constant (pixels at unit depth)
	FocalLength = 128.0

	// StarSpeed is depth travelled per frame at maximum depth, scaled by MaxZ/z closer in
	StarSpeed = 2.0

	// StarRadiusMin/Max bound the simulation-space star radius
	StarRadiusMin = 0.15
	StarRadiusMax = 0.6
)

// Nebula (pixel-space blobs)
const (
	// NebulaRadiusMinFrac/MaxFrac scale radius by viewport width
	NebulaRadiusMinFrac = 0.08
	NebulaRadiusMaxFrac = 0.2

	// NebulaDriftMax is the maximum per-axis velocity in pixels per frame
	NebulaDriftMax = 0.3

	// NebulaInnerAlpha/OuterAlpha are the centre and mid stop opacities
	NebulaInnerAlpha = 0.3
	NebulaOuterAlpha = 0.12
)

// Orbs (normalized-space blobs)
const (
	// OrbRadiusMinFrac/MaxFrac scale radius by min(viewport width, height)
	OrbRadiusMinFrac = 0.18
	OrbRadiusMaxFrac = 0.35

	// OrbDriftMax is the maximum per-axis velocity in normalized units per frame
	OrbDriftMax = 0.0012

	// OrbInnerAlpha/OuterAlpha are the centre and mid stop opacities
	OrbInnerAlpha = 0.35
	OrbOuterAlpha = 0.15

	// OrbitAmpMax keeps closed-form orbits inside [0.5-amp, 0.5+amp]
	OrbitAmpMax = 0.35

	// OrbitFreqMin/Max bound the angular frequency in radians per second
	OrbitFreqMin = 0.05
	OrbitFreqMax = 0.2
)

// Gradient stop offsets
const (
	GradientMidOffset = 0.5
)

// Frame pacing
const (
	// FrameBudget is the target frame period for hosts without a vsync signal
	FrameBudget = 16 * time.Millisecond
)

// Default populations per variant
const (
	StarfieldStarCount = 1500
	StarfieldBlobCount = 5

	GlowStarCount = 400
	GlowBlobCount = 4

	OrbitStarCount = 250
	OrbitBlobCount = 3
)
