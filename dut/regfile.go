// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut

import "github.com/pkg/errors"

// An EvalFn implements a model's logic. It is called by Eval with the
// register file holding the current signal values; sequential state lives
// in the closure.
//
type EvalFn func(r *RegFile)

// A RegFile is a Model backed by a plain register map. It is the building
// block for models written in Go; the zero value is not usable, use
// NewRegFile.
//
type RegFile struct {
	sigs []Signal
	pins map[string]int
	regs []uint64
	mask []uint64
	eval EvalFn
}

// NewRegFile builds a register file from a signal declaration string (see
// ParseSignals) and an eval function. eval may be nil for models whose
// signals are driven entirely from outside, as in tests.
//
func NewRegFile(decl string, eval EvalFn) (*RegFile, error) {
	sigs, err := ParseSignals(decl)
	if err != nil {
		return nil, err
	}
	r := &RegFile{
		sigs: sigs,
		pins: make(map[string]int, len(sigs)),
		regs: make([]uint64, len(sigs)),
		mask: make([]uint64, len(sigs)),
		eval: eval,
	}
	for i, s := range sigs {
		r.pins[s.Name] = i
		r.mask[i] = 1<<uint(s.Width) - 1
	}
	return r, nil
}

// SetEval replaces the model's eval function. It exists so that eval
// closures can resolve pins from the register file they drive:
//
//	r, _ := dut.NewRegFile("clk, q", nil)
//	q := r.MustPin("q")
//	r.SetEval(func(r *dut.RegFile) { r.Set(q, ...) })
//
func (r *RegFile) SetEval(eval EvalFn) { r.eval = eval }

// Signals returns the declared signals in pin order.
//
func (r *RegFile) Signals() []Signal { return r.sigs }

// Pin resolves a signal name to its pin number.
//
func (r *RegFile) Pin(name string) (int, error) {
	n, ok := r.pins[name]
	if !ok {
		return 0, errors.Errorf("model has no signal %q", name)
	}
	return n, nil
}

// MustPin is like Pin but panics on unknown names. It is meant for eval
// closures resolving their own pins at construction time.
//
func (r *RegFile) MustPin(name string) int {
	n, err := r.Pin(name)
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns the value of a pin.
//
func (r *RegFile) Get(pin int) uint64 { return r.regs[pin] }

// Set assigns a pin, truncated to the signal's declared width.
//
func (r *RegFile) Set(pin int, v uint64) { r.regs[pin] = v & r.mask[pin] }

// Eval runs the model's eval function, if any.
//
func (r *RegFile) Eval() {
	if r.eval != nil {
		r.eval(r)
	}
}

// Close implements Model. A bare register file holds no resources.
//
func (r *RegFile) Close() error { return nil }
