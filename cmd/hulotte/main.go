// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hulotte drives frames through simulated or serial-attached
// hardware from the command line.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hulotte",
	Short: "Frame bridge for clock-driven hardware models.",
	Long: `Moves fixed-size frames of samples through a hardware model over a
ready/valid handshake, driving the model's clock and reset itself.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "TOML configuration file")
}

// loadConfig returns the configuration selected by the --config flag, or
// the defaults when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return config.Default(), err
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
