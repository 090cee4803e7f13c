// Package stealth assembles browser-injectable evasion payloads and matching
// Chromium launch parameters from a catalog of patch groups. Each group
// overrides one browser-exposed surface (navigator identity fields, plugin
// lists, canvas/WebGL/audio fingerprints, interaction timing) so that an
// automated session reads like an ordinary one.
package stealth

import "github.com/xkilldash9x/shroud/pkg/humanoid"

// Config selects which patch groups are rendered into the payload. Every
// field except DoNotTrack is opt-out: nil or true keeps the group active,
// only an explicit false removes it. DoNotTrack is opt-in because most real
// browsers ship with the DNT header disabled.
//
// No field is validated. The generator never mutates a Config once it has
// been handed one.
type Config struct {
	// Identity tier.
	Webdriver           *bool `mapstructure:"webdriver" yaml:"webdriver"`
	Languages           *bool `mapstructure:"languages" yaml:"languages"`
	Platform            *bool `mapstructure:"platform" yaml:"platform"`
	HardwareConcurrency *bool `mapstructure:"hardware_concurrency" yaml:"hardware_concurrency"`
	DeviceMemory        *bool `mapstructure:"device_memory" yaml:"device_memory"`
	Screen              *bool `mapstructure:"screen" yaml:"screen"`
	Touch               *bool `mapstructure:"touch" yaml:"touch"`
	WindowFrame         *bool `mapstructure:"window_frame" yaml:"window_frame"`
	DoNotTrack          *bool `mapstructure:"do_not_track" yaml:"do_not_track"`

	// Capability tier.
	ChromeRuntime   *bool `mapstructure:"chrome_runtime" yaml:"chrome_runtime"`
	Permissions     *bool `mapstructure:"permissions" yaml:"permissions"`
	Plugins         *bool `mapstructure:"plugins" yaml:"plugins"`
	MediaDevices    *bool `mapstructure:"media_devices" yaml:"media_devices"`
	CapabilityStubs *bool `mapstructure:"capability_stubs" yaml:"capability_stubs"`
	ConnectionInfo  *bool `mapstructure:"connection_info" yaml:"connection_info"`
	UserActivation  *bool `mapstructure:"user_activation" yaml:"user_activation"`

	// Fingerprint-noise tier.
	CanvasNoise *bool `mapstructure:"canvas_noise" yaml:"canvas_noise"`
	WebGLNoise  *bool `mapstructure:"webgl_noise" yaml:"webgl_noise"`
	AudioNoise  *bool `mapstructure:"audio_noise" yaml:"audio_noise"`

	// Behavior tier.
	Behavior *bool `mapstructure:"behavior" yaml:"behavior"`

	// UserAgent overrides the generated identity string in both the payload
	// and the launch arguments. Empty means a fresh string is drawn from the
	// version pools on every generation.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// Humanoid supplies the behavior tier's jitter ranges. Zero-value fields
	// fall back to the humanoid defaults at profile-draw time.
	Humanoid humanoid.Config `mapstructure:"humanoid" yaml:"humanoid"`
}

// DefaultConfig returns the documented baseline: every group active except
// the do-not-track flag.
func DefaultConfig() *Config {
	return &Config{}
}

// Bool is a convenience for building configs literally:
//
//	cfg := &stealth.Config{CanvasNoise: stealth.Bool(false)}
func Bool(v bool) *bool {
	return &v
}

// enabled implements the opt-out reading of a gate field.
func enabled(f *bool) bool {
	return f == nil || *f
}

// optedIn implements the opt-in reading used by DoNotTrack.
func optedIn(f *bool) bool {
	return f != nil && *f
}
