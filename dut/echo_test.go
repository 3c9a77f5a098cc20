// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut_test

import (
	"testing"

	"github.com/madellimac/hulotte"
	"github.com/madellimac/hulotte/dut"
	"github.com/madellimac/hulotte/duttest"
)

// the echo model carries 32-bit samples
func ref32(in []uint64) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = v & (1<<32 - 1)
	}
	return out
}

func TestEcho_direct(t *testing.T) {
	duttest.CompareModel(t, hulotte.Config{FrameSize: 16}, dut.NewEcho(), ref32)
}

func TestEcho_uart(t *testing.T) {
	duttest.CompareModel(t, hulotte.Config{FrameSize: 16, Mode: hulotte.UartRouted}, dut.NewEcho(), ref32)
}
