package stealth

import "fmt"

// userAgentFlagPrefix starts the one launch argument that varies between
// generations.
const userAgentFlagPrefix = "--user-agent="

// staticLaunchFlags is the fixed part of the launch-argument set: automation
// signaling off, background throttling off, and the usual stability flags
// for containerized Chromium.
var staticLaunchFlags = []string{
	"--disable-blink-features=AutomationControlled",
	"--exclude-switches=enable-automation",
	"--disable-infobars",
	"--no-first-run",
	"--no-default-browser-check",
	"--disable-background-networking",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-renderer-backgrounding",
	"--disable-hang-monitor",
	"--disable-prompt-on-repost",
	"--disable-sync",
	"--disable-default-apps",
	"--metrics-recording-only",
	"--disable-dev-shm-usage",
	"--disable-features=IsolateOrigins,site-per-process",
}

// LaunchArguments returns the command-line flags for a Chromium-family
// process, using the ambient randomization source for the identity string.
// The same config drives both this and Generate, so the window geometry and
// user agent the process reports match what the payload spoofs.
func LaunchArguments(cfg *Config) []string {
	return LaunchArgumentsWith(cfg, DefaultSource)
}

// LaunchArgumentsWith is LaunchArguments with an explicit source.
func LaunchArgumentsWith(cfg *Config, src Source) []string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if src == nil {
		src = DefaultSource
	}
	args := make([]string, 0, len(staticLaunchFlags)+2)
	args = append(args, staticLaunchFlags...)
	args = append(args, fmt.Sprintf("--window-size=%d,%d", screenWidth, screenHeight-screenTaskbarPx))
	args = append(args, userAgentFlagPrefix+userAgentFor(cfg, src))
	return args
}
