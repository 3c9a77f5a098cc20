// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

import "github.com/madellimac/hulotte/dut"

// A resetSequencer holds the model in reset for the initial edges of a run
// and releases it exactly once. While reset is asserted both lanes' outward
// signals are forced low so the model cannot observe a handshake during
// power-up settling.
//
type resetSequencer struct {
	pin      int
	released bool
}

// assert is called on every reset-phase edge.
//
func (s *resetSequencer) assert(m dut.Model, in *inputLane, out *outputLane) {
	m.Set(s.pin, 1)
	in.clear(m)
	out.clear(m)
}

// release deasserts reset on the first non-reset edge and is a no-op
// afterwards; reset is never reasserted within the same run.
//
func (s *resetSequencer) release(m dut.Model) {
	if s.released {
		return
	}
	m.Set(s.pin, 0)
	s.released = true
}
