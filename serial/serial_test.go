// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package serial_test

import (
	"bytes"
	"testing"

	"github.com/madellimac/hulotte/serial"
	"github.com/madellimac/hulotte/stream"
)

// a bytes.Buffer is a loopback port: reads consume what was written
func TestRelay_loopback(t *testing.T) {
	var port bytes.Buffer
	r := serial.NewRelay(&port, 4)

	in := []uint64{0x101, 0x02, 0x303, 0xff}
	out := make([]uint64, 4)
	if err := r.Exchange(in, out); err != nil {
		t.Fatalf("%+v", err)
	}
	// samples are narrowed to their low byte on the wire
	want := []uint64{0x01, 0x02, 0x03, 0xff}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("output %v, want %v", out, want)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestRelay_frameSizeMismatch(t *testing.T) {
	var port bytes.Buffer
	r := serial.NewRelay(&port, 4)
	if err := r.Exchange(make([]uint64, 2), make([]uint64, 4)); err == nil {
		t.Fatal("expected error for short input")
	}
	if err := r.Exchange(make([]uint64, 4), make([]uint64, 2)); err == nil {
		t.Fatal("expected error for short output")
	}
}

// shortPort answers with fewer bytes than were written
type shortPort struct{ bytes.Buffer }

func (p *shortPort) Write(b []byte) (int, error) {
	return p.Buffer.Write(b[:1])
}

func TestRelay_shortRead(t *testing.T) {
	r := serial.NewRelay(&shortPort{}, 4)
	if err := r.Exchange(make([]uint64, 4), make([]uint64, 4)); err == nil {
		t.Fatal("expected error on short read")
	}
}

func TestRelay_codelet(t *testing.T) {
	var port bytes.Buffer
	r := serial.NewRelay(&port, 2)
	cl := r.Codelet()

	out := make([]uint64, 2)
	if st := cl([]uint64{7, 8}, out, 0); st != stream.OK {
		t.Fatalf("status %v", st)
	}
	if out[0] != 7 || out[1] != 8 {
		t.Fatalf("output %v", out)
	}

	bad := serial.NewRelay(&shortPort{}, 2)
	if st := bad.Codelet()([]uint64{1, 2}, out, 0); st != stream.Failed {
		t.Fatalf("status %v, want failed", st)
	}
}

func TestOpen_badConfig(t *testing.T) {
	if _, err := serial.Open(serial.Config{Port: "x", Baud: 9600, Parity: "weird"}, 4); err == nil {
		t.Fatal("expected error for unknown parity")
	}
	if _, err := serial.Open(serial.Config{Port: "x", Baud: 9600, StopBits: 3}, 4); err == nil {
		t.Fatal("expected error for unsupported stop bits")
	}
	if _, err := serial.Open(serial.Config{Port: "x", Baud: 9600}, 0); err == nil {
		t.Fatal("expected error for zero frame size")
	}
}
