package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/shroud/internal/config"
	"github.com/xkilldash9x/shroud/internal/observability"
	"github.com/xkilldash9x/shroud/pkg/stealth"
)

// disableSetters maps the config-file key of each patch gate to a setter, so
// groups can be switched off from the command line without a config file.
var disableSetters = map[string]func(*stealth.Config){
	"webdriver":            func(c *stealth.Config) { c.Webdriver = stealth.Bool(false) },
	"languages":            func(c *stealth.Config) { c.Languages = stealth.Bool(false) },
	"platform":             func(c *stealth.Config) { c.Platform = stealth.Bool(false) },
	"hardware_concurrency": func(c *stealth.Config) { c.HardwareConcurrency = stealth.Bool(false) },
	"device_memory":        func(c *stealth.Config) { c.DeviceMemory = stealth.Bool(false) },
	"screen":               func(c *stealth.Config) { c.Screen = stealth.Bool(false) },
	"touch":                func(c *stealth.Config) { c.Touch = stealth.Bool(false) },
	"window_frame":         func(c *stealth.Config) { c.WindowFrame = stealth.Bool(false) },
	"do_not_track":         func(c *stealth.Config) { c.DoNotTrack = stealth.Bool(false) },
	"chrome_runtime":       func(c *stealth.Config) { c.ChromeRuntime = stealth.Bool(false) },
	"permissions":          func(c *stealth.Config) { c.Permissions = stealth.Bool(false) },
	"plugins":              func(c *stealth.Config) { c.Plugins = stealth.Bool(false) },
	"media_devices":        func(c *stealth.Config) { c.MediaDevices = stealth.Bool(false) },
	"capability_stubs":     func(c *stealth.Config) { c.CapabilityStubs = stealth.Bool(false) },
	"connection_info":      func(c *stealth.Config) { c.ConnectionInfo = stealth.Bool(false) },
	"user_activation":      func(c *stealth.Config) { c.UserActivation = stealth.Bool(false) },
	"canvas_noise":         func(c *stealth.Config) { c.CanvasNoise = stealth.Bool(false) },
	"webgl_noise":          func(c *stealth.Config) { c.WebGLNoise = stealth.Bool(false) },
	"audio_noise":          func(c *stealth.Config) { c.AudioNoise = stealth.Bool(false) },
	"behavior":             func(c *stealth.Config) { c.Behavior = stealth.Bool(false) },
}

func newGenerateCmd() *cobra.Command {
	var (
		output    string
		jsonMode  bool
		disabled  []string
		userAgent string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the injectable stealth payload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()
			cfg := config.Get().Stealth
			if userAgent != "" {
				cfg.UserAgent = userAgent
			}
			for _, key := range disabled {
				setter, ok := disableSetters[key]
				if !ok {
					return fmt.Errorf("unknown patch group %q (known: %s)", key, strings.Join(knownGroupKeys(), ", "))
				}
				setter(&cfg)
			}

			payload := stealth.Generate(&cfg)
			logger.Info("payload generated",
				zap.String("generation_id", uuid.New().String()),
				zap.Int("payload_bytes", len(payload)),
				zap.Int("disabled_groups", len(disabled)),
			)

			if jsonMode {
				envelope := map[string]string{"payload": payload}
				encoded, err := json.Marshal(envelope)
				if err != nil {
					return fmt.Errorf("encoding payload envelope: %w", err)
				}
				return writeOutput(cmd, output, append(encoded, '\n'))
			}
			return writeOutput(cmd, output, []byte(payload+"\n"))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the payload to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "emit a JSON envelope instead of raw script text")
	cmd.Flags().StringSliceVar(&disabled, "disable", nil, "patch groups to disable (repeatable, e.g. --disable canvas_noise)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "custom identity string override")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing payload to %s: %w", path, err)
	}
	return nil
}

func knownGroupKeys() []string {
	keys := make([]string, 0, len(disableSetters))
	for key := range disableSetters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
