package main

import (
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dexfeed",
	Short: "Random Pokémon dance party",
	Long: `dexfeed draws random Pokémon from PokéAPI and shows them as animated cards.

Run "dexfeed serve" for the interactive stage in a browser, or "dexfeed draw"
to print a few cards straight to the terminal. Every setting can also be
given as a DEXFEED_* environment variable.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(drawCmd)
}
