package stealth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchArgumentsCoreFlags(t *testing.T) {
	args := LaunchArguments(nil)

	assert.Contains(t, args, "--disable-blink-features=AutomationControlled")
	assert.Contains(t, args, "--exclude-switches=enable-automation")
	assert.Contains(t, args, "--disable-infobars")
	assert.Contains(t, args, "--disable-dev-shm-usage")
	assert.Contains(t, args, fmt.Sprintf("--window-size=%d,%d", screenWidth, screenHeight-screenTaskbarPx))
}

func TestLaunchArgumentsUserAgentFlag(t *testing.T) {
	args := LaunchArguments(nil)
	last := args[len(args)-1]
	require.True(t, strings.HasPrefix(last, userAgentFlagPrefix))
	assert.Regexp(t, userAgentPattern, strings.TrimPrefix(last, userAgentFlagPrefix))
}

func TestLaunchArgumentsCustomUserAgent(t *testing.T) {
	args := LaunchArguments(&Config{UserAgent: "Custom/1.2"})
	assert.Contains(t, args, userAgentFlagPrefix+"Custom/1.2")
}

func TestLaunchArgumentsWithSeededSource(t *testing.T) {
	a := LaunchArgumentsWith(nil, rand.New(rand.NewPCG(11, 11)))
	b := LaunchArgumentsWith(nil, rand.New(rand.NewPCG(11, 11)))
	assert.Equal(t, a, b)
}

func TestLaunchArgumentsMatchPayloadGeometry(t *testing.T) {
	// The window the process opens must agree with what the payload reports
	// for screen.availHeight.
	payload := Generate(nil)
	assert.Contains(t, payload, fmt.Sprintf("availHeight: %d", screenHeight-screenTaskbarPx))
	assert.Contains(t, LaunchArguments(nil), fmt.Sprintf("--window-size=%d,%d", screenWidth, screenHeight-screenTaskbarPx))
}
