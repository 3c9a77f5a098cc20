// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut_test

import (
	"testing"

	"github.com/madellimac/hulotte/dut"
)

func TestParseSignals(t *testing.T) {
	sigs, err := dut.ParseSignals("reset, clk,data[32], _x1[4]")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	want := []dut.Signal{
		{Name: "reset", Width: 1},
		{Name: "clk", Width: 1},
		{Name: "data", Width: 32},
		{Name: "_x1", Width: 4},
	}
	if len(sigs) != len(want) {
		t.Fatalf("got %d signals, want %d", len(sigs), len(want))
	}
	for i := range want {
		if sigs[i] != want[i] {
			t.Fatalf("signal %d: got %v, want %v", i, sigs[i], want[i])
		}
	}
}

func TestParseSignals_errors(t *testing.T) {
	for _, decl := range []string{
		"",
		"a,,b",
		"a[0]",
		"a[65]",
		"a[xx]",
		"a[8",
		"1abc",
		"a b",
		"a, a",
	} {
		if _, err := dut.ParseSignals(decl); err == nil {
			t.Errorf("ParseSignals(%q): expected error", decl)
		}
	}
}
