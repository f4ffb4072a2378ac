package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/obskit/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage global brand settings",
	Long:  "View and modify the theme, gradient and font applied to every overlay",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the global settings",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSettings(m.Current())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key=value>...",
	Short: "Update global settings",
	Long: `Update global settings. Keys: theme, gradient, gradienttype, font,
colormode, setup.

Example:
  obskit settings set theme=light gradient=palette:aurora setup=true`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := parsePartial(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := p.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		m, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSettings(m.Update(p))
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSettings(m.Reset())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func loadSettings() (*settings.Manager, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	m := settings.NewManager(store)
	m.Load()
	return m, nil
}

// parsePartial turns key=value arguments into a settings update.
func parsePartial(args []string) (settings.Partial, error) {
	var p settings.Partial
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return p, fmt.Errorf("expected key=value, got %q", arg)
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "theme":
			p.Theme = &value
		case "gradient":
			p.Gradient = &value
		case "gradienttype":
			p.GradientType = &value
		case "font":
			p.Font = &value
		case "colormode":
			p.ColorMode = &value
		case "setup", "setupcomplete":
			b, err := cast.ToBoolE(value)
			if err != nil {
				return p, fmt.Errorf("invalid setup value %q", value)
			}
			p.SetupComplete = &b
		default:
			return p, fmt.Errorf("unknown setting %q", key)
		}
	}
	return p, nil
}

func printSettings(s settings.Settings) {
	fmt.Printf("theme:        %s\n", s.Theme)
	fmt.Printf("gradient:     %s\n", s.Gradient)
	fmt.Printf("gradienttype: %s\n", s.GradientType)
	fmt.Printf("font:         %s\n", s.Font)
	fmt.Printf("colormode:    %s\n", s.ColorMode)
	fmt.Printf("setup:        %v\n", s.SetupComplete)
}
