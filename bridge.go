// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/madellimac/hulotte/dut"
	"github.com/madellimac/hulotte/stream"
)

// A TraceSink receives one signal-snapshot notification per simulation
// edge, in strictly increasing edge order. The trace package provides a VCD
// implementation.
//
type TraceSink interface {
	Dump(edge uint64) error
}

// Config holds the construction parameters of a bridge. All fields are
// fixed once the bridge is built.
//
type Config struct {
	// FrameSize is the number of samples per frame. Required.
	FrameSize int
	// ResetEdges is the length of the initial reset window in edges.
	// Zero selects DefaultResetEdges.
	ResetEdges uint64
	// MaxEdges bounds a single run. Zero selects a budget derived from the
	// frame size. A run that exhausts the budget fails with a TimeoutError
	// instead of blocking forever on a stalled model.
	MaxEdges uint64
	// Mode selects the signal group addressed on the model.
	Mode RoutingMode
}

// maxEdges returns the effective edge budget: enough for a model that needs
// many cycles per sample, small enough to fail fast on a dead one.
//
func (c Config) maxEdges() uint64 {
	if c.MaxEdges != 0 {
		return c.MaxEdges
	}
	return c.ResetEdges + 64*uint64(c.FrameSize) + 64
}

// A Bridge moves one frame per Run call through a hardware model, driving
// the model's clock and reset itself. It owns the model handle and the
// trace sink across runs; Close releases both.
//
// A bridge is not safe for concurrent use: the model's internal state is
// not reentrant. Concurrent frame streams need one bridge (and one model)
// each.
//
type Bridge struct {
	m       dut.Model
	sink    TraceSink
	cfg     Config
	rt      *router
	running bool
}

// New builds a bridge over m. The signal group selected by cfg.Mode is
// resolved immediately and the model's bypass flag, when relevant, is
// driven once here. sink may be nil to run untraced.
//
func New(m dut.Model, sink TraceSink, cfg Config) (*Bridge, error) {
	if cfg.FrameSize <= 0 {
		return nil, errors.Errorf("invalid frame size %d", cfg.FrameSize)
	}
	if cfg.ResetEdges == 0 {
		cfg.ResetEdges = DefaultResetEdges
	}
	rt, err := newRouter(m, cfg.Mode)
	if err != nil {
		return nil, err
	}
	return &Bridge{m: m, sink: sink, cfg: cfg, rt: rt}, nil
}

// Run drives the model until a full output frame has been captured and
// returns it. in must hold exactly FrameSize samples and is not modified.
//
// Two conditions yield both a complete output frame and a non-nil error:
// a *PartialTransferError (the model produced a full frame without
// accepting all input samples) and a *ProtocolError (an optimistic
// acceptance was contradicted by an advisory ready signal). A
// *TimeoutError reports an exhausted edge budget; no frame is returned.
//
func (b *Bridge) Run(in []uint64) ([]uint64, error) {
	if b.running {
		return nil, ErrBusy
	}
	if len(in) != b.cfg.FrameSize {
		return nil, errors.Errorf("input frame has %d samples, want %d", len(in), b.cfg.FrameSize)
	}
	b.running = true
	defer func() { b.running = false }()

	clock := NewEdgeClock(b.cfg.ResetEdges)
	inLane := &inputLane{sig: b.rt.in, frame: in}
	outLane := &outputLane{sig: b.rt.out, frame: make([]uint64, b.cfg.FrameSize)}
	reset := &resetSequencer{pin: b.rt.reset}
	budget := b.cfg.maxEdges()

	for outLane.active() {
		edge := clock.Edge()
		if edge >= budget {
			return nil, &TimeoutError{Edges: edge, Received: outLane.recv, Size: b.cfg.FrameSize}
		}

		switch clock.Next() {
		case PhaseReset:
			reset.assert(b.m, inLane, outLane)
		case PhaseRising:
			// The model latches its next state on the clock edge below;
			// nothing to drive here beyond releasing reset.
			reset.release(b.m)
		case PhaseFalling:
			reset.release(b.m)
			outLane.capture(b.m)
			inLane.drive(b.m, edge)
		}

		// Square-wave clock from edge parity, toggled unconditionally.
		b.m.Set(b.rt.clk, b.m.Get(b.rt.clk)^1)
		b.m.Eval()

		if b.sink != nil {
			if err := b.sink.Dump(edge); err != nil {
				return nil, errors.Wrap(err, "trace dump")
			}
		}
	}

	log.Debugf("frame complete: %d edges, %s routing, %d/%d input samples accepted",
		clock.Edge(), b.cfg.Mode, inLane.sent, b.cfg.FrameSize)

	if inLane.violated {
		return outLane.frame, &ProtocolError{Edge: inLane.violatedEdge}
	}
	if inLane.active() {
		return outLane.frame, &PartialTransferError{Sent: inLane.sent, Size: b.cfg.FrameSize}
	}
	return outLane.frame, nil
}

// Codelet adapts the bridge to the stream contract. Conditions that still
// produce a complete output frame are logged and reported as
// stream.Partial; a timeout or any other failure leaves the output frame
// untouched.
//
func (b *Bridge) Codelet() stream.Codelet {
	return func(in, out []uint64, frameID uint64) stream.Status {
		res, err := b.Run(in)
		switch err := err.(type) {
		case nil:
			copy(out, res)
			return stream.OK
		case *PartialTransferError, *ProtocolError:
			log.Warnf("frame %d: %v", frameID, err)
			copy(out, res)
			return stream.Partial
		case *TimeoutError:
			log.Errorf("frame %d: %v", frameID, err)
			return stream.Timeout
		default:
			log.Errorf("frame %d: %v", frameID, err)
			return stream.Failed
		}
	}
}

// Close releases the trace sink (when it is closeable) and the model
// handle. The bridge must not be used afterwards.
//
func (b *Bridge) Close() error {
	var first error
	if c, ok := b.sink.(io.Closer); ok {
		first = c.Close()
	}
	if err := b.m.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
