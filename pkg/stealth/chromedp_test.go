package stealth

import (
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlag(t *testing.T) {
	name, value, ok := splitFlag("--disable-features=IsolateOrigins,site-per-process")
	require.True(t, ok)
	assert.Equal(t, "disable-features", name)
	assert.Equal(t, "IsolateOrigins,site-per-process", value)

	name, _, ok = splitFlag("--disable-infobars")
	assert.False(t, ok)
	assert.Equal(t, "disable-infobars", name)
}

func TestAllocatorOptionsCount(t *testing.T) {
	opts := AllocatorOptions(nil)
	// Defaults, every static flag, enable-automation=false, window size, UA.
	assert.Len(t, opts, len(chromedp.DefaultExecAllocatorOptions)+len(staticLaunchFlags)+3)
}

func TestApplyReturnsAction(t *testing.T) {
	assert.NotNil(t, Apply(nil, nil))
	assert.NotNil(t, Apply(&Config{UserAgent: "Custom/1.0"}, nil))
}
