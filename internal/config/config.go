// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the TOML configuration of the hulotte CLI.
//
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/madellimac/hulotte"
	"github.com/madellimac/hulotte/serial"
)

// Config holds the CLI parameters. Zero-valued fields in the file keep
// their defaults.
//
type Config struct {
	FrameSize  int
	ResetEdges uint64
	MaxEdges   uint64
	Routing    string // "direct" or "uart"
	Trace      string // VCD output path, empty disables tracing
	Serial     serial.Config
}

// Default returns the built-in configuration.
//
func Default() Config {
	return Config{
		FrameSize:  16,
		ResetEdges: hulotte.DefaultResetEdges,
		Routing:    "direct",
		Serial: serial.Config{
			Port:     "/dev/ttyUSB0",
			Baud:     115200,
			Parity:   "even",
			StopBits: 1,
		},
	}
}

type fileConfig struct {
	FrameSize  int    `toml:"frame_size"`
	ResetEdges uint64 `toml:"reset_edges"`
	MaxEdges   uint64 `toml:"max_edges"`
	Routing    string `toml:"routing"`
	Trace      string `toml:"trace"`
	Serial     struct {
		Port     string `toml:"port"`
		Baud     int    `toml:"baud"`
		Parity   string `toml:"parity"`
		StopBits int    `toml:"stop_bits"`
	} `toml:"serial"`
}

// Load reads a TOML file and overlays it on the defaults. Only keys present
// in the file override defaults.
//
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if meta.IsDefined("frame_size") {
		if raw.FrameSize <= 0 {
			return Config{}, errors.Errorf("invalid frame_size %d", raw.FrameSize)
		}
		cfg.FrameSize = raw.FrameSize
	}
	if meta.IsDefined("reset_edges") {
		cfg.ResetEdges = raw.ResetEdges
	}
	if meta.IsDefined("max_edges") {
		cfg.MaxEdges = raw.MaxEdges
	}
	if meta.IsDefined("routing") {
		cfg.Routing = strings.TrimSpace(raw.Routing)
	}
	if meta.IsDefined("trace") {
		cfg.Trace = strings.TrimSpace(raw.Trace)
	}
	if meta.IsDefined("serial", "port") {
		cfg.Serial.Port = strings.TrimSpace(raw.Serial.Port)
	}
	if meta.IsDefined("serial", "baud") {
		cfg.Serial.Baud = raw.Serial.Baud
	}
	if meta.IsDefined("serial", "parity") {
		cfg.Serial.Parity = strings.TrimSpace(raw.Serial.Parity)
	}
	if meta.IsDefined("serial", "stop_bits") {
		cfg.Serial.StopBits = raw.Serial.StopBits
	}
	return cfg, nil
}

// Mode translates the routing key into a bridge routing mode.
//
func (c Config) Mode() (hulotte.RoutingMode, error) {
	switch c.Routing {
	case "", "direct":
		return hulotte.Direct, nil
	case "uart":
		return hulotte.UartRouted, nil
	}
	return 0, errors.Errorf("unknown routing mode %q", c.Routing)
}

// Bridge returns the bridge configuration described by c.
//
func (c Config) Bridge() (hulotte.Config, error) {
	mode, err := c.Mode()
	if err != nil {
		return hulotte.Config{}, err
	}
	return hulotte.Config{
		FrameSize:  c.FrameSize,
		ResetEdges: c.ResetEdges,
		MaxEdges:   c.MaxEdges,
		Mode:       mode,
	}, nil
}
