package stealth

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userAgentPattern = regexp.MustCompile(
	`^Mozilla/5\.0 \(Windows NT 10\.0; Win64; x64\) AppleWebKit/537\.36 \(KHTML, like Gecko\) Chrome/\d+\.\d+\.\d+\.\d+ Safari/537\.36$`,
)

func TestUserAgentShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		ua := UserAgent()
		assert.Regexp(t, userAgentPattern, ua)
	}
}

func TestUserAgentDrawsFromPools(t *testing.T) {
	versionPart := regexp.MustCompile(`Chrome/(\d+)\.(\d+\.\d+\.\d+) `)
	for i := 0; i < 20; i++ {
		match := versionPart.FindStringSubmatch(UserAgent())
		require.Len(t, match, 3)
		assert.Contains(t, chromeMajors, match[1])
		assert.Contains(t, chromeBuilds, match[2])
	}
}

func TestUserAgentWithSeededSource(t *testing.T) {
	a := UserAgentWith(rand.New(rand.NewPCG(5, 5)))
	b := UserAgentWith(rand.New(rand.NewPCG(5, 5)))
	assert.Equal(t, a, b)
}

func TestUserAgentForCustomOverride(t *testing.T) {
	cfg := &Config{UserAgent: "Custom/9.9"}
	assert.Equal(t, "Custom/9.9", userAgentFor(cfg, DefaultSource))
	assert.Regexp(t, userAgentPattern, userAgentFor(&Config{}, DefaultSource))
	assert.Regexp(t, userAgentPattern, userAgentFor(nil, DefaultSource))
}
