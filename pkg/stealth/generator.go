package stealth

import "strings"

// groupSeparator joins rendered groups. Fixed so payload structure is
// deterministic for a given config.
const groupSeparator = "\n\n"

// Generate renders the payload for the given config using the ambient
// randomization source. A nil config means the default baseline. The result
// is meant to be evaluated in the page context before any page script runs.
//
// Generate is total: there is no configuration it rejects, and it never
// mutates the config it is given.
func Generate(cfg *Config) string {
	return GenerateWith(cfg, DefaultSource)
}

// GenerateWith is Generate with an explicit randomization source, so callers
// (and tests) that need reproducible payloads can supply a seeded one.
//
// The payload's structure — which groups appear, in which order — depends
// only on the config. The specific noise values embedded by the fingerprint
// and behavior tiers are redrawn from src on every call.
func GenerateWith(cfg *Config, src Source) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if src == nil {
		src = DefaultSource
	}
	parts := make([]string, 0, len(catalog))
	for _, group := range catalog {
		if !group.active(cfg) {
			continue
		}
		parts = append(parts, group.render(cfg, src))
	}
	return strings.Join(parts, groupSeparator)
}
