// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obskit",
	Short: "obskit - browser-source overlays for OBS",
	Long: `obskit serves themeable overlays that OBS loads as browser sources:
text banners, animated borders, live counters, calls to action, social
handles and mesh backgrounds.

Every overlay is configured entirely through its URL, so a copied link is
the whole setup. Global brand settings apply to every overlay once set.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
