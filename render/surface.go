package render

import "errors"

// ErrEmptySurface is returned when a surface is sized to zero pixels
var ErrEmptySurface = errors.New("surface has no drawable area")

// GradientStop is one colour stop of a radial gradient
// Offset is the normalized distance from centre (0.0-1.0)
type GradientStop struct {
	Offset float64
	Color  RGB
	Alpha  float64
}

// Surface is a drawable 2D raster sized in physical pixels
// Resizing discards prior content; callers redraw every frame
type Surface interface {
	// Size returns the pixel dimensions
	Size() (width, height int)
	// Resize reallocates the backing raster, clearing it
	Resize(width, height int) error
	// Fill paints every pixel opaque with c
	Fill(c RGB)
	// FillRadialGradient fills the square bounding the circle (cx, cy, r)
	// Stops must be sorted by offset; pixels beyond the last stop take its colour
	FillRadialGradient(cx, cy, r float64, stops []GradientStop)
	// FillCircle composites a solid circle at alpha
	FillCircle(cx, cy, r float64, c RGB, alpha float64)
}

// sampleGradient resolves colour and alpha at normalized distance t
func sampleGradient(stops []GradientStop, t float64) (RGB, float64) {
	if len(stops) == 0 {
		return RGBBlack, 0
	}
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color, hi.Alpha
		}
		f := (t - lo.Offset) / span
		return Lerp(lo.Color, hi.Color, f), lo.Alpha + (hi.Alpha-lo.Alpha)*f
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha
}
