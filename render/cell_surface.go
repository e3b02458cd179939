package render

import "math"

// CellSurface is a software pixel buffer composited with the blend ops in rgb.go
// Terminal hosts map two vertical pixels onto one character cell
type CellSurface struct {
	width, height int
	pixels        []RGB
}

// NewCellSurface allocates a cleared surface
func NewCellSurface(width, height int) (*CellSurface, error) {
	s := &CellSurface{}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the pixel dimensions
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the buffer, prior content is lost
func (s *CellSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	s.width, s.height = width, height
	s.pixels = make([]RGB, width*height)
	return nil
}

// Pixel returns the colour at (x, y), black outside the buffer
func (s *CellSurface) Pixel(x, y int) RGB {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return RGBBlack
	}
	return s.pixels[y*s.width+x]
}

// Fill paints every pixel opaque
func (s *CellSurface) Fill(c RGB) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// bounds clips a square around (cx, cy) to the buffer
func (s *CellSurface) bounds(cx, cy, r float64) (minX, minY, maxX, maxY int) {
	minX = max(int(math.Floor(cx-r)), 0)
	minY = max(int(math.Floor(cy-r)), 0)
	maxX = min(int(math.Ceil(cx+r)), s.width)
	maxY = min(int(math.Ceil(cy+r)), s.height)
	return
}

// FillRadialGradient composites the gradient over its bounding square
func (s *CellSurface) FillRadialGradient(cx, cy, r float64, stops []GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	minX, minY, maxX, maxY := s.bounds(cx, cy, r)

	for y := minY; y < maxY; y++ {
		dy := float64(y) + 0.5 - cy
		rowOff := y * s.width
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - cx
			t := math.Sqrt(dx*dx+dy*dy) / r
			col, alpha := sampleGradient(stops, t)
			if alpha <= 0.004 {
				continue
			}
			idx := rowOff + x
			s.pixels[idx] = Blend(s.pixels[idx], col, alpha)
		}
	}
}

// FillCircle lightens the covered pixels with a screen blend, like an emissive glow
// Sub-pixel circles add light to the nearest pixel scaled by covered area, so faint stars sharing a pixel accumulate
func (s *CellSurface) FillCircle(cx, cy, r float64, c RGB, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}

	if r < 0.5 {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if x < 0 || y < 0 || x >= s.width || y >= s.height {
			return
		}
		coverage := (r * r) / 0.25
		idx := y*s.width + x
		s.pixels[idx] = Add(s.pixels[idx], Scale(c, coverage), alpha)
		return
	}

	minX, minY, maxX, maxY := s.bounds(cx, cy, r)
	rSq := r * r
	for y := minY; y < maxY; y++ {
		dy := float64(y) + 0.5 - cy
		rowOff := y * s.width
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > rSq {
				continue
			}
			idx := rowOff + x
			s.pixels[idx] = Screen(s.pixels[idx], c, alpha)
		}
	}
}
