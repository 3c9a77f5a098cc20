// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/madellimac/hulotte"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hulotte.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
frame_size = 32
routing = "uart"
trace = "wave.vcd"

[serial]
port = "/dev/ttyACM1"
parity = "none"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if cfg.FrameSize != 32 || cfg.Routing != "uart" || cfg.Trace != "wave.vcd" {
		t.Fatalf("loaded %+v", cfg)
	}
	// keys absent from the file keep their defaults
	if cfg.ResetEdges != hulotte.DefaultResetEdges {
		t.Fatalf("ResetEdges = %d", cfg.ResetEdges)
	}
	if cfg.Serial.Port != "/dev/ttyACM1" || cfg.Serial.Parity != "none" {
		t.Fatalf("serial config %+v", cfg.Serial)
	}
	if cfg.Serial.Baud != 115200 || cfg.Serial.StopBits != 1 {
		t.Fatalf("serial defaults lost: %+v", cfg.Serial)
	}

	mode, err := cfg.Mode()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if mode != hulotte.UartRouted {
		t.Fatalf("mode = %v", mode)
	}
}

func TestLoad_errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "frame_size = -3\n")); err == nil {
		t.Fatal("expected error for negative frame size")
	}
	if _, err := Load(writeConfig(t, "frame_size = [1]\n")); err == nil {
		t.Fatal("expected error for malformed value")
	}
}

func TestBridgeConfig(t *testing.T) {
	cfg := Default()
	cfg.Routing = "sideways"
	if _, err := cfg.Bridge(); err == nil {
		t.Fatal("expected error for unknown routing")
	}

	cfg = Default()
	cfg.MaxEdges = 500
	bcfg, err := cfg.Bridge()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if bcfg.FrameSize != cfg.FrameSize || bcfg.MaxEdges != 500 || bcfg.Mode != hulotte.Direct {
		t.Fatalf("bridge config %+v", bcfg)
	}
}
