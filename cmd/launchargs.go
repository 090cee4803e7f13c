package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/shroud/internal/config"
	"github.com/xkilldash9x/shroud/pkg/stealth"
)

func newLaunchArgsCmd() *cobra.Command {
	var (
		jsonMode  bool
		userAgent string
	)

	cmd := &cobra.Command{
		Use:   "launch-args",
		Short: "Print the Chromium launch arguments matching the payload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get().Stealth
			if userAgent != "" {
				cfg.UserAgent = userAgent
			}

			flags := assembleLaunchArgs(&cfg, config.Get().Browser)

			if jsonMode {
				encoded, err := json.Marshal(flags)
				if err != nil {
					return fmt.Errorf("encoding launch arguments: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(flags, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "emit the arguments as a JSON array")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "custom identity string override")
	return cmd
}

// assembleLaunchArgs folds the process-level knobs into the stealth flag set.
// Consumer-supplied extras go last so they win on conflicts.
func assembleLaunchArgs(cfg *stealth.Config, browser config.BrowserConfig) []string {
	flags := stealth.LaunchArguments(cfg)
	if browser.Headless {
		flags = append(flags, "--headless=new")
	}
	return append(flags, browser.Args...)
}
