package render

import (
	"image"

	"github.com/fogleman/gg"
)

// RasterSurface draws through an anti-aliased gg context
// Used by the window host and headless snapshots
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface allocates a cleared surface
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	s := &RasterSurface{}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the pixel dimensions
func (s *RasterSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize replaces the context, prior content is lost
func (s *RasterSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	s.dc = gg.NewContext(width, height)
	return nil
}

// Fill paints every pixel opaque
func (s *RasterSurface) Fill(c RGB) {
	s.dc.SetColor(c.NRGBA(1))
	s.dc.Clear()
}

// FillRadialGradient fills the bounding square with a concentric gradient
func (s *RasterSurface) FillRadialGradient(cx, cy, r float64, stops []GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	for _, st := range stops {
		grad.AddColorStop(st.Offset, st.Color.NRGBA(st.Alpha))
	}
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(cx-r, cy-r, 2*r, 2*r)
	s.dc.Fill()
}

// FillCircle composites a solid circle
func (s *RasterSurface) FillCircle(cx, cy, r float64, c RGB, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	s.dc.SetColor(c.NRGBA(alpha))
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Fill()
}

// Image exposes the backing raster
func (s *RasterSurface) Image() *image.RGBA {
	if img, ok := s.dc.Image().(*image.RGBA); ok {
		return img
	}
	bounds := s.dc.Image().Bounds()
	img := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, s.dc.Image().At(x, y))
		}
	}
	return img
}

// SavePNG writes the current frame to path
func (s *RasterSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
