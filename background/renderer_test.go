package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/parallax/render"
)

// recordingSurface logs draw calls in order
type recordingSurface struct {
	w, h  int
	calls []string
	fill  render.RGB
}

func (r *recordingSurface) Size() (int, int) { return r.w, r.h }

func (r *recordingSurface) Resize(w, h int) error {
	r.w, r.h = w, h
	r.calls = append(r.calls, "resize")
	return nil
}

func (r *recordingSurface) Fill(c render.RGB) {
	r.fill = c
	r.calls = append(r.calls, "fill")
}

func (r *recordingSurface) FillRadialGradient(cx, cy, rad float64, stops []render.GradientStop) {
	r.calls = append(r.calls, "gradient")
}

func (r *recordingSurface) FillCircle(cx, cy, rad float64, c render.RGB, alpha float64) {
	r.calls = append(r.calls, "circle")
}

func TestRendererLayerOrder(t *testing.T) {
	cfg := DefaultConfig(VariantStarfield)
	cfg.StarCount = 50
	cfg.BlobCount = 3
	cfg.Seed = 3
	s, err := NewState(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Reset(200, 100))

	// Pin a few stars on screen and one off screen
	s.Stars = s.Stars[:3]
	s.Stars[0] = Star{X: 0, Y: 0, Z: 100, Radius: 0.5}
	s.Stars[1] = Star{X: 10, Y: 5, Z: 150, Radius: 0.5}
	s.Stars[2] = Star{X: 1e6, Y: 0, Z: 10, Radius: 0.5}

	surf := &recordingSurface{w: 200, h: 100}
	stats := NewRenderer(cfg.ClearColor).Draw(surf, s)

	assert.Equal(t, []string{"fill", "gradient", "gradient", "gradient", "circle", "circle"}, surf.calls)
	assert.Equal(t, cfg.ClearColor, surf.fill)
	assert.Equal(t, FrameStats{Blobs: 3, StarsDrawn: 2, StarsCulled: 1}, stats)
}

func TestRendererOnCellSurface(t *testing.T) {
	cfg := DefaultConfig(VariantGlow)
	cfg.Seed = 11
	s, err := NewState(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Reset(120, 80))

	surf, err := render.NewCellSurface(120, 80)
	require.NoError(t, err)

	r := NewRenderer(cfg.ClearColor)
	for i := 0; i < 5; i++ {
		s.Step(0)
		stats := r.Draw(surf, s)
		assert.Equal(t, cfg.StarCount, stats.StarsDrawn+stats.StarsCulled)
	}

	// Orb gradients brighten at least part of the canvas above the clear colour
	lit := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			if !surf.Pixel(x, y).Equal(cfg.ClearColor) {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestGradientStops(t *testing.T) {
	b := Blob{Inner: render.RGB{R: 1}, Outer: render.RGB{B: 2}, InnerAlpha: 0.3, OuterAlpha: 0.1}
	stops := b.GradientStops()
	require.Len(t, stops, 3)
	assert.Equal(t, 0.0, stops[0].Offset)
	assert.Equal(t, 0.3, stops[0].Alpha)
	assert.Equal(t, b.Outer, stops[1].Color)
	assert.Equal(t, 1.0, stops[2].Offset)
	assert.Zero(t, stops[2].Alpha)
}
