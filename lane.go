// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

import "github.com/madellimac/hulotte/dut"

// laneSignals holds the pins a lane drives or observes on the model. ready
// and advisory are -1 when the model exposes no such signal; hasReady is
// true only when a trusted ready pin is bound.
//
type laneSignals struct {
	valid    int
	ready    int
	data     int
	advisory int
	hasReady bool
}

// An inputLane presents frame samples to the model one at a time, advancing
// only on confirmed (or, without a ready signal, assumed) acceptance.
//
type inputLane struct {
	sig   laneSignals
	frame []uint64
	sent  int

	violated     bool
	violatedEdge uint64
}

// active reports whether the lane still has samples to present.
//
func (l *inputLane) active() bool { return l.sent < len(l.frame) }

// clear forces the lane's outward signals low, used during the reset window
// so the model never observes a spurious handshake while settling.
//
func (l *inputLane) clear(m dut.Model) {
	m.Set(l.sig.valid, 0)
}

// drive samples the completion of the handshake offered on the previous
// cycle, then presents the next sample. Called once per falling edge.
//
// With a ready signal, completion is valid AND ready sampled together. An
// optimistic lane counts any asserted valid as accepted; if an advisory
// ready pin exists and reads low at that moment, the assumption was wrong
// and the first offending edge is recorded.
//
func (l *inputLane) drive(m dut.Model, edge uint64) {
	if m.Get(l.sig.valid) != 0 {
		switch {
		case l.sig.hasReady:
			if m.Get(l.sig.ready) != 0 {
				l.sent++
			}
		default:
			if l.sig.advisory >= 0 && m.Get(l.sig.advisory) == 0 && !l.violated {
				l.violated = true
				l.violatedEdge = edge
			}
			l.sent++
		}
	}

	if l.active() {
		m.Set(l.sig.valid, 1)
		m.Set(l.sig.data, l.frame[l.sent])
	} else {
		// Frame exhausted: valid stays low for the rest of the run.
		m.Set(l.sig.valid, 0)
	}
}

// An outputLane captures frame samples produced by the model.
//
type outputLane struct {
	sig   laneSignals
	frame []uint64
	recv  int
}

// active reports whether the lane still has room for samples. The run ends
// when the output lane goes inactive.
//
func (l *outputLane) active() bool { return l.recv < len(l.frame) }

func (l *outputLane) clear(m dut.Model) {
	if l.sig.ready >= 0 {
		m.Set(l.sig.ready, 0)
	}
}

// capture asserts the outward ready unconditionally and, when the model
// presents valid data, stores one sample. At most one sample is taken per
// falling edge regardless of how long valid stays asserted.
//
func (l *outputLane) capture(m dut.Model) {
	if l.sig.ready >= 0 {
		m.Set(l.sig.ready, 1)
	}
	if m.Get(l.sig.valid) != 0 && l.active() {
		l.frame[l.recv] = m.Get(l.sig.data)
		l.recv++
	}
}
