// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/madellimac/hulotte"
	"github.com/madellimac/hulotte/dut"
	"github.com/madellimac/hulotte/stream"
	"github.com/madellimac/hulotte/trace"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run frames through the built-in echo model.",
	Long: `Builds a bridge over the reference echo model and streams numbered
frames through it, optionally dumping a VCD waveform of every edge.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBridge(cmd); err != nil {
			log.Errorf("%+v", err)
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().Int("frames", 3, "number of frames to run")
	runCmd.Flags().Int("frame-size", 0, "samples per frame (overrides config)")
	runCmd.Flags().String("trace", "", "VCD output file (overrides config)")
	runCmd.Flags().Bool("uart", false, "route frames through the model's UART group")
	runCmd.Flags().Bool("stats", false, "print per-stage statistics")
	rootCmd.AddCommand(runCmd)
}

func runBridge(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("frame-size"); n > 0 {
		cfg.FrameSize = n
	}
	if p, _ := cmd.Flags().GetString("trace"); p != "" {
		cfg.Trace = p
	}
	if uart, _ := cmd.Flags().GetBool("uart"); uart {
		cfg.Routing = "uart"
	}
	bcfg, err := cfg.Bridge()
	if err != nil {
		return err
	}

	model := dut.NewEcho()
	var sink hulotte.TraceSink
	if cfg.Trace != "" {
		vcd, err := trace.Create(cfg.Trace, model)
		if err != nil {
			return err
		}
		sink = vcd
		log.Infof("tracing to %s", cfg.Trace)
	}
	bridge, err := hulotte.New(model, sink, bcfg)
	if err != nil {
		return err
	}
	defer bridge.Close()

	// Numbered ramp source feeding the bridge, one frame per Exec.
	var base uint64
	source := func(_, out []uint64, _ uint64) stream.Status {
		for i := range out {
			out[i] = base + uint64(i)
		}
		base += uint64(len(out))
		return stream.OK
	}
	seq, err := stream.NewSequence(cfg.FrameSize,
		stream.Stage{Name: "source", Run: source},
		stream.Stage{Name: "bridge", Run: bridge.Codelet()},
	)
	if err != nil {
		return err
	}

	frames, _ := cmd.Flags().GetInt("frames")
	for i := 0; i < frames; i++ {
		out, err := seq.Exec(nil)
		if err != nil {
			return err
		}
		fmt.Printf("frame %d: %v\n", i, out)
	}

	if s, _ := cmd.Flags().GetBool("stats"); s {
		for _, st := range seq.Stats() {
			fmt.Printf("%-10s %4d frames  %v\n", st.Name, st.Frames, st.Duration)
		}
	}
	return nil
}
