// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte/serial"
)

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Exchange one frame over the configured serial port.",
	Long: `Writes a numbered ramp frame to the serial port, reads the same
number of bytes back and prints them. The far end is expected to answer
byte for byte.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRelay(cmd); err != nil {
			log.Errorf("%+v", err)
			os.Exit(1)
		}
	},
}

func init() {
	relayCmd.Flags().String("port", "", "serial device (overrides config)")
	rootCmd.AddCommand(relayCmd)
}

func runRelay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Serial.Port = p
	}

	relay, err := serial.Open(cfg.Serial, cfg.FrameSize)
	if err != nil {
		return err
	}
	defer relay.Close()
	log.Debugf("port %s open at %d baud", cfg.Serial.Port, cfg.Serial.Baud)

	in := make([]uint64, cfg.FrameSize)
	out := make([]uint64, cfg.FrameSize)
	for i := range in {
		in[i] = uint64(i)
	}
	if err := relay.Exchange(in, out); err != nil {
		return err
	}
	fmt.Printf("sent:     %v\nreceived: %v\n", in, out)
	return nil
}
