package background

import "github.com/lixenwraith/parallax/render"

// FrameStats summarizes one composited frame
type FrameStats struct {
	Blobs       int
	StarsDrawn  int
	StarsCulled int
}

// Renderer composites a State onto a Surface
// Layer order: opaque clear, blobs, stars
type Renderer struct {
	clear render.RGB
	star  render.RGB
}

// NewRenderer creates a renderer with the given clear colour and white stars
func NewRenderer(clear render.RGB) *Renderer {
	return &Renderer{clear: clear, star: render.RGBWhite}
}

// Draw produces one frame synchronously
func (r *Renderer) Draw(surf render.Surface, s *State) FrameStats {
	var stats FrameStats

	// Opaque fill, not a transparent clear, so nothing accumulates between frames
	surf.Fill(r.clear)

	for i := range s.Blobs {
		b := &s.Blobs[i]
		x, y, rad := s.BlobGeometry(b)
		surf.FillRadialGradient(x, y, rad, b.GradientStops())
		stats.Blobs++
	}

	for i := range s.Stars {
		p := s.Project(s.Stars[i])
		if !p.Visible {
			stats.StarsCulled++
			continue
		}
		if p.Alpha > 0 {
			surf.FillCircle(p.X, p.Y, p.Radius, r.star, p.Alpha)
		}
		stats.StarsDrawn++
	}

	return stats
}
