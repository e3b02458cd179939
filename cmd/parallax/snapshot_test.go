package main

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/parallax/background"
	"github.com/lixenwraith/parallax/config"
	"github.com/lixenwraith/parallax/parameter"
)

func testConfig(v background.Variant) *config.Config {
	bg := background.DefaultConfig(v)
	bg.StarCount = 100
	bg.Seed = 5
	return &config.Config{
		Background: bg,
		Display: config.DisplayConfig{
			Host:        config.HostTerminal,
			FrameBudget: parameter.FrameBudget,
			Width:       96,
			Height:      54,
		},
	}
}

func TestSnapshotPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, snapshot(testConfig(background.VariantStarfield), 5, out, zaptest.NewLogger(t)))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 54, img.Bounds().Dy())
}

func TestSnapshotGIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "anim.gif")
	require.NoError(t, snapshot(testConfig(background.VariantOrbit), 4, out, zaptest.NewLogger(t)))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 4)
	assert.Equal(t, []int{2, 2, 2, 2}, anim.Delay)
}

func TestSnapshotRejectsBadArgs(t *testing.T) {
	dir := t.TempDir()
	logger := zaptest.NewLogger(t)
	assert.Error(t, snapshot(testConfig(background.VariantGlow), 0, filepath.Join(dir, "a.png"), logger))
	assert.Error(t, snapshot(testConfig(background.VariantGlow), 1, filepath.Join(dir, "a.bmp"), logger))

	cfg := testConfig(background.VariantGlow)
	cfg.Display.Width = 0
	assert.Error(t, snapshot(cfg, 1, filepath.Join(dir, "a.png"), logger))
}

func TestGifDelay(t *testing.T) {
	assert.Equal(t, 2, gifDelay(16*time.Millisecond))
	assert.Equal(t, 1, gifDelay(time.Millisecond))
	assert.Equal(t, 10, gifDelay(100*time.Millisecond))
}
