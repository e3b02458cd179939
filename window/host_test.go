package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/parallax/background"
	"github.com/lixenwraith/parallax/engine"
	"github.com/lixenwraith/parallax/parameter"
)

func TestHostSchedulesOnStep(t *testing.T) {
	h := New(64, 48, "test", parameter.FrameBudget, zaptest.NewLogger(t))

	cfg := background.DefaultConfig(background.VariantGlow)
	cfg.StarCount = 20
	cfg.Seed = 3
	bg, err := engine.NewBackground(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, bg.Mount(h))

	now := time.Now()
	h.step(now)
	h.step(now.Add(parameter.FrameBudget))
	assert.Equal(t, uint64(2), bg.Stats().Frames)
	assert.True(t, h.dirty)

	bg.Unmount()
	h.dirty = false
	h.step(now.Add(2 * parameter.FrameBudget))
	assert.False(t, h.dirty, "nothing scheduled after unmount")
}

func TestHostLayoutNotifiesOnChange(t *testing.T) {
	h := New(64, 48, "test", parameter.FrameBudget, nil)

	var got [][2]int
	h.AddResizeListener(func(w, ht int) { got = append(got, [2]int{w, ht}) })

	w, ht := h.Layout(64, 48)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, ht)
	assert.Empty(t, got)

	h.Layout(100, 80)
	h.Layout(100, 80)
	h.Layout(0, 0)
	assert.Equal(t, [][2]int{{100, 80}}, got)

	w, ht = h.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 80, ht)
}

func TestHostQuitTerminatesUpdate(t *testing.T) {
	h := New(8, 8, "test", parameter.FrameBudget, nil)
	h.quit.Store(true)
	assert.ErrorIs(t, h.Update(), ebiten.Termination)
}

func TestTPS(t *testing.T) {
	assert.Equal(t, 62, tps(16*time.Millisecond))
	assert.Equal(t, 30, tps(time.Second/30))
	assert.Equal(t, ebiten.DefaultTPS, tps(0))
	assert.Equal(t, 1, tps(2*time.Second))
}
