// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package stream defines the codelet contract through which frame-processing
modules are invoked, and a minimal sequence runner that chains codelets
over per-frame buffers.

The surrounding execution framework is deliberately out of scope: a module
only has to expose a Codelet. Sequence is just enough plumbing to chain a
source, a bridge and a sink for demos and tests.
*/
package stream

import (
	"time"

	"github.com/pkg/errors"
)

// A Status is a codelet return code. Zero means success.
//
type Status int

const (
	OK Status = iota
	Failed
	Timeout
	Partial
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Failed:
		return "failed"
	case Timeout:
		return "timeout"
	case Partial:
		return "partial transfer"
	}
	return "unknown"
}

// A Codelet processes one frame: it reads in, populates out and returns a
// status. Both buffers hold the sequence's frame size. Sources may ignore
// in; sinks may ignore out.
//
type Codelet func(in, out []uint64, frameID uint64) Status

// A Stage is a named codelet within a sequence.
//
type Stage struct {
	Name string
	Run  Codelet
}

// StageStats accumulates per-stage execution counters.
//
type StageStats struct {
	Name     string
	Frames   uint64
	Duration time.Duration
}

// A Sequence runs a fixed chain of stages over one frame at a time, each
// stage's output buffer feeding the next stage's input.
//
type Sequence struct {
	frameSize int
	stages    []Stage
	stats     []StageStats
	cur, next []uint64
	frames    uint64
}

// NewSequence builds a sequence of stages over frames of frameSize
// samples.
//
func NewSequence(frameSize int, stages ...Stage) (*Sequence, error) {
	if frameSize <= 0 {
		return nil, errors.Errorf("invalid frame size %d", frameSize)
	}
	if len(stages) == 0 {
		return nil, errors.New("empty stage list")
	}
	s := &Sequence{
		frameSize: frameSize,
		stages:    stages,
		stats:     make([]StageStats, len(stages)),
		cur:       make([]uint64, frameSize),
		next:      make([]uint64, frameSize),
	}
	for i, st := range stages {
		if st.Run == nil {
			return nil, errors.Errorf("stage %q has no codelet", st.Name)
		}
		s.stats[i].Name = st.Name
	}
	return s, nil
}

// Exec runs all stages over one frame and returns the final output. in may
// be nil when the first stage is a source; otherwise it must hold exactly
// the frame size. A non-zero stage status aborts the chain.
//
func (s *Sequence) Exec(in []uint64) ([]uint64, error) {
	if in != nil && len(in) != s.frameSize {
		return nil, errors.Errorf("input frame has %d samples, want %d", len(in), s.frameSize)
	}
	id := s.frames
	s.frames++

	clear(s.cur)
	copy(s.cur, in)
	for i, st := range s.stages {
		start := time.Now()
		status := st.Run(s.cur, s.next, id)
		s.stats[i].Frames++
		s.stats[i].Duration += time.Since(start)
		if status != OK {
			return nil, errors.Errorf("frame %d: stage %q: %s", id, st.Name, status)
		}
		s.cur, s.next = s.next, s.cur
	}

	out := make([]uint64, s.frameSize)
	copy(out, s.cur)
	return out, nil
}

// Frames returns the number of Exec calls so far, successful or not.
//
func (s *Sequence) Frames() uint64 { return s.frames }

// Stats returns per-stage execution counters.
//
func (s *Sequence) Stats() []StageStats {
	out := make([]StageStats, len(s.stats))
	copy(out, s.stats)
	return out
}
