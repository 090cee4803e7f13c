package humanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileDeterministic(t *testing.T) {
	a := NewProfile(DefaultConfig(), 1234)
	b := NewProfile(DefaultConfig(), 1234)
	assert.Equal(t, a, b)

	c := NewProfile(DefaultConfig(), 5678)
	assert.NotEqual(t, a.Drift, c.Drift, "different seeds must produce different drift tables")
}

func TestNewProfileRanges(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(0); seed < 50; seed++ {
		p := NewProfile(cfg, seed)

		assert.GreaterOrEqual(t, p.ScrollJitterPx, cfg.ScrollJitterPx*0.75)
		assert.LessOrEqual(t, p.ScrollJitterPx, cfg.ScrollJitterPx*1.25)

		assert.Equal(t, cfg.ClickDelayMinMs, p.ClickDelayMinMs)
		assert.Greater(t, p.ClickDelayMaxMs, p.ClickDelayMinMs)
		assert.LessOrEqual(t, p.ClickDelayMaxMs, cfg.ClickDelayMaxMs)

		assert.GreaterOrEqual(t, p.FocusDelayMaxMs, 1)
		assert.LessOrEqual(t, p.FocusDelayMaxMs, cfg.FocusDelayMaxMs)

		assert.GreaterOrEqual(t, p.TimerJitterMs, cfg.TimerJitterMs*0.75)
		assert.LessOrEqual(t, p.TimerJitterMs, cfg.TimerJitterMs*1.25)

		assert.Equal(t, cfg.DriftAmplitude, p.DriftAmplitude)
	}
}

func TestNewProfileDriftSmoothness(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProfile(cfg, 42)
	require.Len(t, p.Drift, cfg.DriftSamples)

	for i, v := range p.Drift {
		assert.LessOrEqual(t, v, cfg.DriftAmplitude, "drift[%d] above amplitude", i)
		assert.GreaterOrEqual(t, v, -cfg.DriftAmplitude, "drift[%d] below amplitude", i)
	}
	// Perlin noise wanders; adjacent samples must not jump across the full
	// amplitude range.
	for i := 1; i < len(p.Drift); i++ {
		step := p.Drift[i] - p.Drift[i-1]
		assert.Less(t, abs(step), cfg.DriftAmplitude, "step %d too abrupt", i)
	}
}

func TestNewProfileZeroConfigBackfilled(t *testing.T) {
	p := NewProfile(Config{}, 7)
	def := DefaultConfig()
	assert.Len(t, p.Drift, def.DriftSamples)
	assert.Equal(t, def.ClickDelayMinMs, p.ClickDelayMinMs)
	assert.Greater(t, p.ScrollJitterPx, 0.0)
	assert.Greater(t, p.TimerJitterMs, 0.0)
}

func TestWithDefaultsPartialConfig(t *testing.T) {
	cfg := withDefaults(Config{ScrollJitterPx: 12, DriftSamples: 8})
	def := DefaultConfig()
	assert.Equal(t, 12.0, cfg.ScrollJitterPx)
	assert.Equal(t, 8, cfg.DriftSamples)
	assert.Equal(t, def.FocusDelayMaxMs, cfg.FocusDelayMaxMs)
	assert.Equal(t, def.TimerJitterMs, cfg.TimerJitterMs)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
