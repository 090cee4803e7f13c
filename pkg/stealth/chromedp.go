package stealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// AllocatorOptions mirrors LaunchArguments for chromedp consumers: the same
// flag set expressed as exec-allocator options, on top of chromedp's
// defaults. Pass the result to chromedp.NewExecAllocator.
func AllocatorOptions(cfg *Config) []chromedp.ExecAllocatorOption {
	return AllocatorOptionsWith(cfg, DefaultSource)
}

// AllocatorOptionsWith is AllocatorOptions with an explicit source.
func AllocatorOptionsWith(cfg *Config, src Source) []chromedp.ExecAllocatorOption {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if src == nil {
		src = DefaultSource
	}
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	for _, arg := range staticLaunchFlags {
		name, value, ok := splitFlag(arg)
		if !ok {
			opts = append(opts, chromedp.Flag(name, true))
			continue
		}
		opts = append(opts, chromedp.Flag(name, value))
	}
	opts = append(opts,
		chromedp.Flag("enable-automation", false),
		chromedp.WindowSize(screenWidth, screenHeight-screenTaskbarPx),
		chromedp.UserAgent(userAgentFor(cfg, src)),
	)
	return opts
}

// splitFlag turns "--name=value" into its parts; ok is false for bare flags.
func splitFlag(arg string) (name, value string, ok bool) {
	trimmed := strings.TrimPrefix(arg, "--")
	name, value, ok = strings.Cut(trimmed, "=")
	return name, value, ok
}

// Apply returns a chromedp action that arms a browser context: it registers
// the payload to run on every new document and sets the matching user-agent
// override at the protocol level. Run it once per context, before the first
// navigation. A nil logger is replaced with a no-op one.
func Apply(cfg *Config, logger *zap.Logger) chromedp.Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := logger.Named("stealth")
	if cfg == nil {
		cfg = DefaultConfig()
	}
	// Pin the identity string on a copy so the protocol-level override and
	// the payload's navigator.userAgent agree, without mutating the caller's
	// config.
	armed := *cfg
	if armed.UserAgent == "" {
		armed.UserAgent = UserAgentWith(DefaultSource)
	}
	ua := armed.UserAgent
	payload := Generate(&armed)

	return chromedp.Tasks{
		network.Enable(),
		chromedp.ActionFunc(func(ctx context.Context) error {
			override := emulation.SetUserAgentOverride(ua).WithPlatform(personaPlatform)
			if err := override.Do(ctx); err != nil {
				return fmt.Errorf("stealth: set user agent override: %w", err)
			}
			return nil
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if _, err := page.AddScriptToEvaluateOnNewDocument(payload).Do(ctx); err != nil {
				return fmt.Errorf("stealth: register payload on new document: %w", err)
			}
			l.Debug("stealth payload registered",
				zap.Int("payload_bytes", len(payload)),
				zap.String("user_agent", ua),
			)
			return nil
		}),
	}
}
