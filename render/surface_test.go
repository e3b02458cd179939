package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStops = []GradientStop{
	{Offset: 0, Color: RGB{200, 0, 0}, Alpha: 1},
	{Offset: 0.5, Color: RGB{0, 0, 200}, Alpha: 0.5},
	{Offset: 1, Color: RGB{0, 0, 200}, Alpha: 0},
}

func TestSampleGradient(t *testing.T) {
	c, a := sampleGradient(testStops, 0)
	assert.Equal(t, RGB{200, 0, 0}, c)
	assert.Equal(t, 1.0, a)

	c, a = sampleGradient(testStops, 0.25)
	assert.Equal(t, RGB{100, 0, 100}, c)
	assert.InDelta(t, 0.75, a, 1e-9)

	_, a = sampleGradient(testStops, 1)
	assert.Zero(t, a)

	_, a = sampleGradient(testStops, 3)
	assert.Zero(t, a, "beyond last stop keeps the transparent outer colour")

	_, a = sampleGradient(nil, 0.5)
	assert.Zero(t, a)
}

func TestCellSurfaceResizeClears(t *testing.T) {
	s, err := NewCellSurface(4, 4)
	require.NoError(t, err)

	s.Fill(RGBWhite)
	require.Equal(t, RGBWhite, s.Pixel(2, 2))

	require.NoError(t, s.Resize(8, 6))
	w, h := s.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, RGBBlack, s.Pixel(2, 2))

	assert.ErrorIs(t, s.Resize(0, 10), ErrEmptySurface)
	_, err = NewCellSurface(-1, 1)
	assert.ErrorIs(t, err, ErrEmptySurface)
}

func TestCellSurfaceGradient(t *testing.T) {
	s, err := NewCellSurface(40, 40)
	require.NoError(t, err)
	s.Fill(RGBBlack)

	s.FillRadialGradient(20, 20, 10, testStops)

	centre := s.Pixel(19, 19)
	assert.Greater(t, centre.R, uint8(150), "centre takes the inner stop")

	// Corner of the bounding square lies outside the radius: untouched
	assert.Equal(t, RGBBlack, s.Pixel(10, 10))
	// Outside the bounding square: untouched
	assert.Equal(t, RGBBlack, s.Pixel(35, 20))

	// Clipped gradient at the edge must not panic
	s.FillRadialGradient(-5, 45, 12, testStops)
	s.FillRadialGradient(20, 20, 0, testStops)
}

func TestCellSurfaceCircle(t *testing.T) {
	s, err := NewCellSurface(10, 10)
	require.NoError(t, err)
	s.Fill(RGBBlack)

	s.FillCircle(5, 5, 2, RGBWhite, 1)
	assert.Equal(t, RGBWhite, s.Pixel(5, 5))
	assert.Equal(t, RGBBlack, s.Pixel(0, 0))

	s.Fill(RGBBlack)
	s.FillCircle(2.5, 2.5, 0.25, RGBWhite, 1)
	p := s.Pixel(2, 2)
	assert.Greater(t, p.R, uint8(0))
	assert.Less(t, p.R, uint8(255), "sub-pixel star is dimmed by coverage")

	// Off-surface and degenerate circles are ignored
	s.FillCircle(-3, 50, 0.2, RGBWhite, 1)
	s.FillCircle(5, 5, 3, RGBWhite, 0)
	assert.Equal(t, RGBBlack, s.Pixel(5, 5))
}

func TestCellSurfaceCircleLightens(t *testing.T) {
	s, err := NewCellSurface(10, 10)
	require.NoError(t, err)

	// Screen keeps the backdrop's blue where a plain blend would replace it
	s.Fill(RGB{0, 0, 200})
	s.FillCircle(5, 5, 2, RGB{200, 0, 0}, 1)
	assert.Equal(t, RGB{200, 0, 200}, s.Pixel(5, 5))

	// Faint sub-pixel stars sharing a pixel add up
	s.Fill(RGBBlack)
	s.FillCircle(2.5, 2.5, 0.25, RGBWhite, 1)
	assert.Equal(t, RGB{63, 63, 63}, s.Pixel(2, 2))

	s.FillCircle(2.2, 2.7, 0.25, RGBWhite, 1)
	assert.Equal(t, RGB{126, 126, 126}, s.Pixel(2, 2))
}

func TestRasterSurface(t *testing.T) {
	s, err := NewRasterSurface(32, 16)
	require.NoError(t, err)

	w, h := s.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)

	s.Fill(RGB{10, 20, 30})
	img := s.Image()
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(10), r>>8)
	assert.Equal(t, uint32(20), g>>8)
	assert.Equal(t, uint32(30), b>>8)
	assert.Equal(t, uint32(255), a>>8)

	s.FillCircle(16, 8, 4, RGBWhite, 1)
	r, _, _, _ = s.Image().At(16, 8).RGBA()
	assert.Equal(t, uint32(255), r>>8)

	s.FillRadialGradient(4, 4, 6, testStops)

	require.NoError(t, s.Resize(8, 8))
	w, h = s.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
	assert.ErrorIs(t, s.Resize(8, 0), ErrEmptySurface)
}
