// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package duttest provides utility functions for testing hardware models.
//
package duttest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/madellimac/hulotte"
	"github.com/madellimac/hulotte/dut"
)

// iterations per comparison run.
const frames = 16

// CompareModel drives random frames through a bridge over m and compares
// every output frame against a pure reference function. ref receives the
// input frame and returns the expected output frame; it must not modify
// its argument.
//
func CompareModel(t *testing.T, cfg hulotte.Config, m dut.Model, ref func(in []uint64) []uint64) {
	t.Helper()

	b, err := hulotte.New(m, nil, cfg)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	in := make([]uint64, cfg.FrameSize)
	for f := 0; f < frames; f++ {
		for i := range in {
			in[i] = rng.Uint64()
		}
		got, err := b.Run(in)
		if err != nil {
			t.Fatalf("frame %d: %+v", f, err)
		}
		want := ref(in)
		if len(want) != len(got) {
			t.Fatalf("frame %d: reference returned %d samples, model %d", f, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("frame %d sample %d: expected %#x, got %#x\ninput: %#x", f, i, want[i], got[i], in)
			}
		}
	}
}
