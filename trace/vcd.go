// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package trace provides waveform sinks for bridge runs.

VCD writes value-change-dump files readable by common waveform viewers. It
snapshots every signal of a model once per simulation edge, writing only
the signals that changed since the previous edge.
*/
package trace

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/madellimac/hulotte/dut"
)

// A VCD dumps a model's signals to a value-change-dump stream. It
// implements the bridge's TraceSink interface; timestamps are edge counts.
//
type VCD struct {
	w      *bufio.Writer
	c      io.Closer
	m      dut.Model
	ids    []string
	prev   []uint64
	header bool
}

// New returns a VCD sink writing to w for the signals of m.
//
func New(w io.Writer, m dut.Model) *VCD {
	sigs := m.Signals()
	v := &VCD{
		w:    bufio.NewWriter(w),
		m:    m,
		ids:  make([]string, len(sigs)),
		prev: make([]uint64, len(sigs)),
	}
	for i := range sigs {
		v.ids[i] = idCode(i)
	}
	return v
}

// Create opens (or truncates) the named file and returns a VCD sink writing
// to it. The file is owned by the sink and closed by Close.
//
func Create(path string, m dut.Model) (*VCD, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create trace file")
	}
	v := New(f, m)
	v.c = f
	return v, nil
}

// Dump records the model's current signal values at the given edge. Edges
// must be strictly increasing; the first call also emits the file header
// and a full snapshot.
//
func (v *VCD) Dump(edge uint64) error {
	if !v.header {
		if err := v.writeHeader(); err != nil {
			return err
		}
		v.header = true
		return v.snapshot(edge, true)
	}
	return v.snapshot(edge, false)
}

// Close flushes buffered output and closes the underlying file, if the
// sink owns one.
//
func (v *VCD) Close() error {
	err := v.w.Flush()
	if v.c != nil {
		if cerr := v.c.Close(); err == nil {
			err = cerr
		}
	}
	return errors.Wrap(err, "close trace")
}

func (v *VCD) writeHeader() error {
	w := v.w
	w.WriteString("$timescale 1ns $end\n")
	w.WriteString("$scope module dut $end\n")
	for i, s := range v.m.Signals() {
		w.WriteString("$var wire ")
		w.WriteString(strconv.Itoa(s.Width))
		w.WriteByte(' ')
		w.WriteString(v.ids[i])
		w.WriteByte(' ')
		w.WriteString(s.Name)
		w.WriteString(" $end\n")
	}
	w.WriteString("$upscope $end\n")
	_, err := w.WriteString("$enddefinitions $end\n")
	return errors.Wrap(err, "trace header")
}

func (v *VCD) snapshot(edge uint64, all bool) error {
	w := v.w
	w.WriteByte('#')
	w.WriteString(strconv.FormatUint(edge, 10))
	w.WriteByte('\n')
	var err error
	for i, s := range v.m.Signals() {
		val := v.m.Get(i)
		if !all && val == v.prev[i] {
			continue
		}
		v.prev[i] = val
		if s.Width == 1 {
			if val != 0 {
				w.WriteByte('1')
			} else {
				w.WriteByte('0')
			}
			_, err = w.WriteString(v.ids[i])
		} else {
			w.WriteByte('b')
			w.WriteString(strconv.FormatUint(val, 2))
			w.WriteByte(' ')
			_, err = w.WriteString(v.ids[i])
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(err, "trace snapshot")
}

// idCode returns the short identifier for pin n, built from the printable
// ASCII range the VCD format allows.
//
func idCode(n int) string {
	const lo, hi = 33, 127 // '!' .. '~'
	id := []byte{}
	for {
		id = append(id, byte(lo+n%(hi-lo)))
		n = n/(hi-lo) - 1
		if n < 0 {
			return string(id)
		}
	}
}
