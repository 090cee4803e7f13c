package stealth

import "fmt"

// userAgentTemplate is the fixed identity-string shape. Only the Chrome
// version varies between generations.
const userAgentTemplate = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s.%s Safari/537.36"

// chromeMajors and chromeBuilds are drawn independently, so a generated
// string may pair a major with a build number that never shipped together.
// Detectors that cross-check version components against release data can
// notice this; acceptable for now since the pools are small and recent.
var (
	chromeMajors = []string{"122", "123", "124", "125"}
	chromeBuilds = []string{"0.6261.94", "0.6312.86", "0.6367.91", "0.6422.76"}
)

// UserAgent builds a plausible Chrome-on-Windows identity string using the
// ambient randomization source.
func UserAgent() string {
	return UserAgentWith(DefaultSource)
}

// UserAgentWith builds the identity string from the given source. One major
// and one build version are drawn, without consistency checks between them.
func UserAgentWith(src Source) string {
	if src == nil {
		src = DefaultSource
	}
	major := chromeMajors[src.IntN(len(chromeMajors))]
	build := chromeBuilds[src.IntN(len(chromeBuilds))]
	return fmt.Sprintf(userAgentTemplate, major, build)
}

// userAgentFor resolves the identity string for one generation: the custom
// override when the config carries one, otherwise a fresh draw.
func userAgentFor(cfg *Config, src Source) string {
	if cfg != nil && cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return UserAgentWith(src)
}
