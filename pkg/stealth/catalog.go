package stealth

// tier partitions the catalog by the kind of surface a group overrides.
type tier int

const (
	tierIdentity tier = iota
	tierCapability
	tierNoise
	tierBehavior
)

// patchGroup is the catalog's unit of composition: one self-contained
// override recipe for a single browser-exposed surface. Groups are defined
// once at init, carry no per-call state, and are shared read-only across
// generations. Random values are drawn inside render, at generation time.
type patchGroup struct {
	id     string
	tier   tier
	active func(*Config) bool
	render func(*Config, Source) string
}

// catalog holds every patch group in its fixed payload order. Ordering only
// matters for readability of the emitted script; each group acts on an
// independent global, so no group depends on an earlier one having run.
//
// Every group is gated by exactly one Config field. The old split between an
// always-on baseline and an "enhanced" set is gone: the noise and behavior
// tiers are ordinary gated groups like everything else.
var catalog = []patchGroup{
	// Identity tier.
	{id: "webdriver", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.Webdriver) }, render: renderWebdriver},
	{id: "languages", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.Languages) }, render: renderLanguages},
	{id: "platform", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.Platform) }, render: renderPlatform},
	{id: "hardware-concurrency", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.HardwareConcurrency) }, render: renderHardwareConcurrency},
	{id: "device-memory", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.DeviceMemory) }, render: renderDeviceMemory},
	{id: "screen", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.Screen) }, render: renderScreen},
	{id: "touch", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.Touch) }, render: renderTouch},
	{id: "window-frame", tier: tierIdentity, active: func(c *Config) bool { return enabled(c.WindowFrame) }, render: renderWindowFrame},
	{id: "do-not-track", tier: tierIdentity, active: func(c *Config) bool { return optedIn(c.DoNotTrack) }, render: renderDoNotTrack},

	// Capability tier.
	{id: "chrome-runtime", tier: tierCapability, active: func(c *Config) bool { return enabled(c.ChromeRuntime) }, render: renderChromeRuntime},
	{id: "permissions", tier: tierCapability, active: func(c *Config) bool { return enabled(c.Permissions) }, render: renderPermissions},
	{id: "plugins", tier: tierCapability, active: func(c *Config) bool { return enabled(c.Plugins) }, render: renderPlugins},
	{id: "media-devices", tier: tierCapability, active: func(c *Config) bool { return enabled(c.MediaDevices) }, render: renderMediaDevices},
	{id: "capability-stubs", tier: tierCapability, active: func(c *Config) bool { return enabled(c.CapabilityStubs) }, render: renderCapabilityStubs},
	{id: "connection-info", tier: tierCapability, active: func(c *Config) bool { return enabled(c.ConnectionInfo) }, render: renderConnectionInfo},
	{id: "user-activation", tier: tierCapability, active: func(c *Config) bool { return enabled(c.UserActivation) }, render: renderUserActivation},

	// Fingerprint-noise tier.
	{id: "canvas-noise", tier: tierNoise, active: func(c *Config) bool { return enabled(c.CanvasNoise) }, render: renderCanvasNoise},
	{id: "webgl-noise", tier: tierNoise, active: func(c *Config) bool { return enabled(c.WebGLNoise) }, render: renderWebGLNoise},
	{id: "audio-noise", tier: tierNoise, active: func(c *Config) bool { return enabled(c.AudioNoise) }, render: renderAudioNoise},

	// Behavior tier. Three groups share the one behavior gate.
	{id: "interaction-jitter", tier: tierBehavior, active: func(c *Config) bool { return enabled(c.Behavior) }, render: renderInteractionJitter},
	{id: "visibility", tier: tierBehavior, active: func(c *Config) bool { return enabled(c.Behavior) }, render: renderVisibility},
	{id: "timer-jitter", tier: tierBehavior, active: func(c *Config) bool { return enabled(c.Behavior) }, render: renderTimerJitter},
}
