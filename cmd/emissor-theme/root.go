package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"emissor/internal/config"
	"emissor/internal/debug"
	appErrors "emissor/internal/errors"
	"emissor/internal/theme"
)

type rootFlags struct {
	theme  string
	format string
	debug  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "emissor-theme",
		Short: "Inspect the certificate issuer color themes",
		Long: `emissor-theme resolves, converts and blends the colors used by the
certificate issuer UI.

Colors are given as 6-digit hex (with or without #) or as a comma separated
channel list "r,g,b" or "r,g,b,alpha".

Examples:
  emissor-theme list
  emissor-theme get elevation.8 --theme dark
  emissor-theme state primary.hover "#121212"
  emissor-theme blend "#ffffff" "0,0,0"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			debug.Close()
		},
	}

	root.PersistentFlags().StringVarP(&flags.theme, "theme", "t", config.DefaultTheme, "Theme to use (dark, light)")
	root.PersistentFlags().StringVarP(&flags.format, "format", "f", config.FormatHex, "Color output format (hex, rgb)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug log to ~/.emissor/debug.log")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newGetCmd(),
		newStateCmd(),
		newEmphasisCmd(),
		newOverlayCmd(),
		newConvertCmd(),
		newBlendCmd(),
		newThemeCmd(),
		newBrowseCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads config, applies explicitly set flags on top and activates the
// configured theme.
func setup(cmd *cobra.Command, flags *rootFlags) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("theme") {
		overrides[config.KeyTheme] = flags.theme
	}
	if cmd.Flags().Changed("format") {
		overrides[config.KeyOutputFormat] = flags.format
	}
	if cmd.Flags().Changed("debug") {
		overrides[config.KeyDebug] = flags.debug
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("init debug log: %w", err)
	}

	name := config.GetString(config.KeyTheme)
	if !theme.SetTheme(name) {
		return appErrors.New(appErrors.CodeNotFound,
			fmt.Sprintf("unknown theme %q (available: %v)", name, theme.Available()), nil)
	}
	debug.Attrs("command", "name", cmd.CommandPath(), "theme", name, "format", config.OutputFormat())
	return nil
}
