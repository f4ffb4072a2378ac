package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/obskit/internal/config"
	"github.com/thatcatcamp/obskit/internal/overlays"
	"github.com/thatcatcamp/obskit/internal/params"
	"github.com/thatcatcamp/obskit/internal/themes"
)

var urlCmd = &cobra.Command{
	Use:   "url <kind> [query]",
	Short: "Build the browser-source URL for an overlay",
	Long: `Build the browser-source URL for an overlay. The query uses the same
keys as the overlay URL; values equal to the defaults are dropped.

Example:
  obskit url text "preset=brb&text=Back in five"`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := overlays.ParseKind(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		var q url.Values
		if len(args) == 2 {
			q, err = url.ParseQuery(strings.TrimPrefix(args[1], "?"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid query: %v\n", err)
				os.Exit(1)
			}
		}

		m, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		res, err := overlays.Resolver{CustomFonts: config.GetStringSlice("fonts.custom")}.Resolve(kind, m.Current(), q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, key := range res.Reset {
			fmt.Fprintf(os.Stderr, "Warning: %s was invalid and reset to its default\n", key)
		}

		defaults, _ := overlays.Default(kind)
		share, full := params.URLs(config.GetString("server.base_url"), kind.Path(), res.Params, defaults)
		fmt.Println(share)
		if full != share {
			fmt.Printf("\nWith credentials (do not share):\n%s\n", full)
		}
	},
}

var gradientsCmd = &cobra.Command{
	Use:   "gradients",
	Short: "List the named gradients and mesh palettes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Gradients:")
		for _, g := range themes.ListGradients() {
			fmt.Printf("  %-10s %s\n", g.Name, strings.Join(g.Stops, " "))
		}
		fmt.Println("\nPalettes (use as palette:<name>):")
		for _, p := range themes.ListPalettes() {
			fmt.Printf("  %-10s %s\n", p.Name, strings.Join(p.Stops, " "))
		}
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets <kind>",
	Short: "List the presets of an overlay kind",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := overlays.ParseKind(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cards := overlays.Cards(kind)
		if len(cards) == 0 {
			fmt.Printf("No presets for %s\n", kind)
			return
		}
		for _, c := range cards {
			fmt.Printf("  %-12s %-24s %s\n", c.Value, c.Label, c.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(gradientsCmd)
	rootCmd.AddCommand(presetsCmd)
}
