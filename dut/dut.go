// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package dut defines the handle through which a bridge drives a simulated
hardware model: a flat register map of named signals plus an Eval step that
settles combinational logic after signal changes.

Models are typically built from a RegFile and an eval closure holding the
model's sequential state:

	m, err := dut.NewRegFile("reset, clk, q[8]", func(r *dut.RegFile) {
		// combinational + clocked updates
	})

Echo provides a ready-made loopback model used by tests and demos.
*/
package dut

// A Signal describes one named signal of a model: its name and its width in
// bits.
//
type Signal struct {
	Name  string
	Width int
}

// A Model is a register-mapped hardware model. Pins are resolved from
// signal names once and used as indices afterwards; Eval advances the
// model's combinational logic after signal changes; Close releases whatever
// the model holds.
//
// Models are not safe for concurrent use.
//
type Model interface {
	// Signals lists the model's signals. Pin numbers index this list.
	Signals() []Signal
	// Pin resolves a signal name to its pin number.
	Pin(name string) (int, error)
	// Get returns the current value of a pin.
	Get(pin int) uint64
	// Set assigns a pin, truncating to the signal's declared width.
	Set(pin int, v uint64)
	// Eval settles the model after signal changes.
	Eval()
	// Close releases the model's resources.
	Close() error
}
