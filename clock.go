// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

// A Phase classifies a single simulation edge.
//
type Phase uint8

// Edge phases, in the order they occur: a run starts with a block of
// PhaseReset edges, then alternates PhaseRising and PhaseFalling.
//
const (
	PhaseReset Phase = iota
	PhaseRising
	PhaseFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseReset:
		return "reset"
	case PhaseRising:
		return "rising"
	case PhaseFalling:
		return "falling"
	}
	return "unknown"
}

// DefaultResetEdges is the number of initial edges during which the model is
// held in reset. Models with longer power-up settling times can override it
// via Config.ResetEdges.
//
const DefaultResetEdges = 7

// An EdgeClock counts simulation edges and classifies each one. The counter
// is owned by the clock instance, so independent bridges never share
// simulated time. It increases by one per edge and is never rewound.
//
type EdgeClock struct {
	edge       uint64
	resetEdges uint64
}

// NewEdgeClock returns a clock whose first resetEdges edges classify as
// PhaseReset.
//
func NewEdgeClock(resetEdges uint64) *EdgeClock {
	return &EdgeClock{resetEdges: resetEdges}
}

// Edge returns the index of the next edge to run. It doubles as the total
// number of edges run so far.
//
func (c *EdgeClock) Edge() uint64 { return c.edge }

// Next classifies the current edge, advances the counter and returns the
// classification.
//
func (c *EdgeClock) Next() Phase {
	p := c.phaseAt(c.edge)
	c.edge++
	return p
}

// Phase returns the classification of the current edge without advancing
// the counter.
//
func (c *EdgeClock) Phase() Phase { return c.phaseAt(c.edge) }

// IsReset reports whether the current edge falls within the reset window.
//
func (c *EdgeClock) IsReset() bool { return c.Phase() == PhaseReset }

// IsRising reports whether the current edge is a rising sampling point.
//
func (c *EdgeClock) IsRising() bool { return c.Phase() == PhaseRising }

// IsFalling reports whether the current edge is a falling sampling point.
//
func (c *EdgeClock) IsFalling() bool { return c.Phase() == PhaseFalling }

// phaseAt is a pure function of the edge index: edges below the reset
// window are PhaseReset, even edges are PhaseRising, odd edges PhaseFalling.
//
func (c *EdgeClock) phaseAt(e uint64) Phase {
	switch {
	case e < c.resetEdges:
		return PhaseReset
	case e&1 == 0:
		return PhaseRising
	}
	return PhaseFalling
}
