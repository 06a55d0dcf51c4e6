package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"emissor/internal/color"
	"emissor/internal/config"
	"emissor/internal/debug"
	"emissor/internal/preview"
	"emissor/internal/theme"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func printColor(w io.Writer, c color.Color) {
	fmt.Fprintln(w, preview.FormatColor(c, config.OutputFormat()))
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := theme.CurrentName()
			for _, name := range theme.Available() {
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var markdown bool
	var width int
	cmd := &cobra.Command{
		Use:   "show [theme]",
		Short: "Render a theme's colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.Current()
			if len(args) == 1 {
				var err error
				if t, err = theme.Lookup(args[0]); err != nil {
					return err
				}
			}
			if markdown {
				fmt.Fprintln(cmd.OutOrStdout(), preview.Markdown(t, config.GetString(config.KeyMarkdownStyle), width))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), preview.Theme(t))
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print a markdown summary table instead of swatches")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for markdown output")
	return cmd
}

func newGetCmd() *cobra.Command {
	var copyHex bool
	cmd := &cobra.Command{
		Use:   "get <token>",
		Short: "Resolve a color token (surface, primary.500, elevation.8, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := theme.Resolve(theme.Current(), args[0])
			if err != nil {
				return err
			}
			debug.Attrs("resolved token", "token", args[0], "color", c.Hex())
			printColor(cmd.OutOrStdout(), c)
			if copyHex {
				if err := copyToClipboard(c.Hex()); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied '%s' to clipboard.\n", c.Hex())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyHex, "copy", "c", false, "Copy the resolved hex value to the clipboard")
	return cmd
}

func newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <group.state> <color>",
		Short: "Blend a color with an interaction state overlay (e.g. primary.hover)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseColorArg(args[1])
			if err != nil {
				return err
			}
			c, err := theme.ApplyState(theme.Current(), args[0], base)
			if err != nil {
				return err
			}
			printColor(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newEmphasisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emphasis <surface|primary> <high|medium|disabled> <color>",
		Short: "Apply a text emphasis level for content on the surface or primary color",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := theme.ParseEmphasisLevel(args[1])
			if err != nil {
				return err
			}
			base, err := parseColorArg(args[2])
			if err != nil {
				return err
			}
			t := theme.Current()
			switch args[0] {
			case "surface":
				printColor(cmd.OutOrStdout(), t.EmphasisOnSurface(base, level))
			case "primary":
				printColor(cmd.OutOrStdout(), t.EmphasisOnPrimary(base, level))
			default:
				return fmt.Errorf("unknown emphasis context %q (want surface or primary)", args[0])
			}
			return nil
		},
	}
}

func newOverlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlay <outline|surface> <color>",
		Short: "Blend a color with the outline or surface overlay",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseColorArg(args[1])
			if err != nil {
				return err
			}
			t := theme.Current()
			switch args[0] {
			case "outline":
				printColor(cmd.OutOrStdout(), t.Outline(base))
			case "surface":
				printColor(cmd.OutOrStdout(), t.SurfaceOverlay(base))
			default:
				return fmt.Errorf("unknown overlay %q (want outline or surface)", args[0])
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Print a color as hex, rgb and the terminal's nearest palette entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			profile := termenv.NewOutput(cmd.OutOrStdout()).EnvColorProfile()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "hex:      %s\n", preview.FormatColor(c, config.FormatHex))
			fmt.Fprintf(w, "rgb:      %s\n", preview.FormatColor(c, config.FormatRGB))
			fmt.Fprintf(w, "terminal: %s (%s)\n", preview.Nearest(c, profile), preview.ProfileName(profile))
			return nil
		},
	}
}

func newBlendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blend <color>...",
		Short: "Average two or more colors channel by channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]any, len(args))
			for i, arg := range args {
				in, err := colorInput(arg)
				if err != nil {
					return err
				}
				inputs[i] = in
			}
			c, err := color.BlendMany(inputs...)
			if err != nil {
				return err
			}
			printColor(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the persisted theme choice",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Save the theme to the project or user config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := theme.Lookup(args[0]); err != nil {
				return err
			}
			if err := config.SaveTheme(args[0]); err != nil {
				return err
			}
			theme.SetTheme(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printVersion(cmd.OutOrStdout())
			return nil
		},
	}
}
