// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package serial relays frames over a serial port: a frame's samples are
narrowed to bytes, written out, and the same number of bytes is read back
and widened into the output frame. There is no state machine here; the far
end is expected to answer byte for byte.
*/
package serial

import (
	"io"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"github.com/madellimac/hulotte/stream"
)

// Config holds the port parameters of a relay.
//
type Config struct {
	Port     string // device name, e.g. /dev/ttyUSB0
	Baud     int
	Parity   string // "none", "odd" or "even"
	StopBits int    // 1 or 2
}

// A Relay exchanges fixed-size frames over a byte stream.
//
type Relay struct {
	rw        io.ReadWriter
	c         io.Closer
	frameSize int
}

// Open opens the configured serial port and returns a relay over it.
//
func Open(cfg Config, frameSize int) (*Relay, error) {
	if frameSize <= 0 {
		return nil, errors.Errorf("invalid frame size %d", frameSize)
	}
	parity, err := parseParity(cfg.Parity)
	if err != nil {
		return nil, err
	}
	stop, err := parseStopBits(cfg.StopBits)
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(cfg.Port, &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   parity,
		StopBits: stop,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", cfg.Port)
	}
	r := NewRelay(port, frameSize)
	r.c = port
	return r, nil
}

// NewRelay returns a relay over an arbitrary byte stream, useful for
// loopback testing without hardware.
//
func NewRelay(rw io.ReadWriter, frameSize int) *Relay {
	return &Relay{rw: rw, frameSize: frameSize}
}

// Exchange writes the low byte of every input sample, then block-reads the
// same number of bytes back into out. Both frames must hold the relay's
// frame size.
//
func (r *Relay) Exchange(in, out []uint64) error {
	if len(in) != r.frameSize || len(out) != r.frameSize {
		return errors.Errorf("frame has %d/%d samples, want %d", len(in), len(out), r.frameSize)
	}
	buf := make([]byte, r.frameSize)
	for i, v := range in {
		buf[i] = byte(v)
	}
	if _, err := r.rw.Write(buf); err != nil {
		return errors.Wrap(err, "serial write")
	}
	if _, err := io.ReadFull(r.rw, buf); err != nil {
		return errors.Wrap(err, "serial read")
	}
	for i, b := range buf {
		out[i] = uint64(b)
	}
	return nil
}

// Codelet adapts the relay to the stream contract.
//
func (r *Relay) Codelet() stream.Codelet {
	return func(in, out []uint64, _ uint64) stream.Status {
		if err := r.Exchange(in, out); err != nil {
			return stream.Failed
		}
		return stream.OK
	}
}

// Close closes the underlying port, if the relay owns one.
//
func (r *Relay) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}

func parseParity(s string) (serial.Parity, error) {
	switch s {
	case "", "even":
		// the observed hardware protocol defaults to even parity
		return serial.EvenParity, nil
	case "odd":
		return serial.OddParity, nil
	case "none":
		return serial.NoParity, nil
	}
	return 0, errors.Errorf("unknown parity %q", s)
}

func parseStopBits(n int) (serial.StopBits, error) {
	switch n {
	case 0, 1:
		return serial.OneStopBit, nil
	case 2:
		return serial.TwoStopBits, nil
	}
	return 0, errors.Errorf("unsupported stop bits %d", n)
}
