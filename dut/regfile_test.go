// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut_test

import (
	"testing"

	"github.com/madellimac/hulotte/dut"
)

func TestRegFile(t *testing.T) {
	r, err := dut.NewRegFile("clk, data[4]", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	clk, err := r.Pin("clk")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	data := r.MustPin("data")

	if _, err := r.Pin("nope"); err == nil {
		t.Fatal("expected error for unknown signal")
	}

	r.Set(clk, 1)
	if r.Get(clk) != 1 {
		t.Fatalf("clk = %d", r.Get(clk))
	}
	// values truncate to the declared width
	r.Set(data, 0x1f)
	if r.Get(data) != 0xf {
		t.Fatalf("data = %#x, want masked to 4 bits", r.Get(data))
	}

	// Eval with no eval function is a no-op
	r.Eval()
	if err := r.Close(); err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestRegFile_eval(t *testing.T) {
	r, err := dut.NewRegFile("a, b", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	a, b := r.MustPin("a"), r.MustPin("b")
	r.SetEval(func(r *dut.RegFile) {
		r.Set(b, r.Get(a))
	})

	r.Set(a, 1)
	r.Eval()
	if r.Get(b) != 1 {
		t.Fatal("eval did not run")
	}
}

func TestRegFile_width64(t *testing.T) {
	r, err := dut.NewRegFile("wide[64]", nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	pin := r.MustPin("wide")
	r.Set(pin, ^uint64(0))
	if r.Get(pin) != ^uint64(0) {
		t.Fatalf("wide = %#x", r.Get(pin))
	}
}
