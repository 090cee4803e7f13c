// Package humanoid generates randomized interaction-behavior parameters:
// jitter magnitudes and delay windows for scroll, click, and focus, plus a
// Perlin-smoothed drift table. The stealth payload's behavior tier embeds
// one Profile per generation so that injected jitter looks like the smooth,
// slightly irregular motion of a human operator rather than uniform noise.
package humanoid

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters: two octaves of smooth noise are plenty for a drift
// table sampled at coarse steps.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Config holds the tunable ranges a Profile is drawn from. Zero values are
// replaced by DefaultConfig's, so a partially filled config is usable.
type Config struct {
	ScrollJitterPx  float64 `mapstructure:"scroll_jitter_px" yaml:"scroll_jitter_px"`
	ClickDelayMinMs int     `mapstructure:"click_delay_min_ms" yaml:"click_delay_min_ms"`
	ClickDelayMaxMs int     `mapstructure:"click_delay_max_ms" yaml:"click_delay_max_ms"`
	FocusDelayMaxMs int     `mapstructure:"focus_delay_max_ms" yaml:"focus_delay_max_ms"`
	TimerJitterMs   float64 `mapstructure:"timer_jitter_ms" yaml:"timer_jitter_ms"`
	DriftSamples    int     `mapstructure:"drift_samples" yaml:"drift_samples"`
	DriftAmplitude  float64 `mapstructure:"drift_amplitude" yaml:"drift_amplitude"`
}

// DefaultConfig returns ranges tuned to stay below what a user would notice
// while breaking the exact-timing signature of headless automation.
func DefaultConfig() Config {
	return Config{
		ScrollJitterPx:  6,
		ClickDelayMinMs: 8,
		ClickDelayMaxMs: 45,
		FocusDelayMaxMs: 30,
		TimerJitterMs:   0.8,
		DriftSamples:    32,
		DriftAmplitude:  3.5,
	}
}

// Profile is one concrete draw from a Config: the values a single payload
// generation embeds. Profiles are plain data and carry no state.
type Profile struct {
	ScrollJitterPx  float64
	ClickDelayMinMs int
	ClickDelayMaxMs int
	FocusDelayMaxMs int
	TimerJitterMs   float64
	DriftAmplitude  float64
	Drift           []float64
}

// NewProfile draws a Profile deterministically from the seed. The scalar
// parameters jitter around the configured bases; the drift table is sampled
// from seeded Perlin noise so consecutive entries vary smoothly, the way a
// resting hand wanders rather than teleports.
func NewProfile(cfg Config, seed int64) Profile {
	cfg = withDefaults(cfg)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)*0x9e3779b97f4a7c15))
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)

	drift := make([]float64, cfg.DriftSamples)
	for i := range drift {
		drift[i] = noise.Noise1D(float64(i)*0.13) * cfg.DriftAmplitude
	}

	spread := func(base float64) float64 {
		return base * (0.75 + rng.Float64()*0.5)
	}

	minClick := cfg.ClickDelayMinMs
	maxClick := minClick + 1 + rng.IntN(cfg.ClickDelayMaxMs-minClick)
	return Profile{
		ScrollJitterPx:  spread(cfg.ScrollJitterPx),
		ClickDelayMinMs: minClick,
		ClickDelayMaxMs: maxClick,
		FocusDelayMaxMs: 1 + rng.IntN(cfg.FocusDelayMaxMs),
		TimerJitterMs:   spread(cfg.TimerJitterMs),
		DriftAmplitude:  cfg.DriftAmplitude,
		Drift:           drift,
	}
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.ScrollJitterPx <= 0 {
		cfg.ScrollJitterPx = def.ScrollJitterPx
	}
	if cfg.ClickDelayMinMs <= 0 {
		cfg.ClickDelayMinMs = def.ClickDelayMinMs
	}
	if cfg.ClickDelayMaxMs <= cfg.ClickDelayMinMs {
		cfg.ClickDelayMaxMs = cfg.ClickDelayMinMs + def.ClickDelayMaxMs
	}
	if cfg.FocusDelayMaxMs <= 0 {
		cfg.FocusDelayMaxMs = def.FocusDelayMaxMs
	}
	if cfg.TimerJitterMs <= 0 {
		cfg.TimerJitterMs = def.TimerJitterMs
	}
	if cfg.DriftSamples <= 0 {
		cfg.DriftSamples = def.DriftSamples
	}
	if cfg.DriftAmplitude <= 0 {
		cfg.DriftAmplitude = def.DriftAmplitude
	}
	return cfg
}
