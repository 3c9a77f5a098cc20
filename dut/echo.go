// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package dut

// echoSignals is the pinout of the reference model: a common group, the
// direct handshake group and the UART-routed group behind the bypass flag.
//
const echoSignals = "reset, clk, bypass" +
	", in_valid, in_ready, in_data[32], out_valid, out_ready, out_data[32]" +
	", uart_in_valid, uart_in_data[32], uart_out_valid, uart_out_ready, uart_out_data[32]"

// NewEcho returns a model that echoes its input stream to its output with
// one cycle of latency, always ready to accept input. Both signal groups
// are wired to the same internal register; the bypass flag selects which
// one is live. The UART group exposes no input-side ready, matching the
// degraded protocol on that path.
//
// Driven by a bridge over a frame of N samples, the run completes after
// resetEdges + 2N + 1 edges.
//
func NewEcho() *RegFile {
	r, err := NewRegFile(echoSignals, nil)
	if err != nil {
		panic(err)
	}

	var (
		reset  = r.MustPin("reset")
		clk    = r.MustPin("clk")
		bypass = r.MustPin("bypass")

		inValid  = r.MustPin("in_valid")
		inReady  = r.MustPin("in_ready")
		inData   = r.MustPin("in_data")
		outValid = r.MustPin("out_valid")
		outReady = r.MustPin("out_ready")
		outData  = r.MustPin("out_data")

		uInValid  = r.MustPin("uart_in_valid")
		uInData   = r.MustPin("uart_in_data")
		uOutValid = r.MustPin("uart_out_valid")
		uOutReady = r.MustPin("uart_out_ready")
		uOutData  = r.MustPin("uart_out_data")
	)

	var (
		prevClk bool
		full    bool
		hold    uint64
	)

	r.SetEval(func(r *RegFile) {
		c := r.Get(clk) != 0
		posedge := c && !prevClk
		prevClk = c

		uart := r.Get(bypass) != 0

		if r.Get(reset) != 0 {
			full = false
		} else if posedge {
			var valid, ready bool
			var data uint64
			if uart {
				valid = r.Get(uInValid) != 0
				ready = r.Get(uOutReady) != 0
				data = r.Get(uInData)
			} else {
				valid = r.Get(inValid) != 0
				ready = r.Get(outReady) != 0
				data = r.Get(inData)
			}
			if full && ready {
				full = false
			}
			if valid {
				hold = data
				full = true
			}
		}

		// combinational outputs for the live group; the idle group stays low
		r.Set(inReady, 1)
		if uart {
			r.Set(outValid, 0)
			r.Set(uOutValid, b2u(full))
			r.Set(uOutData, hold)
		} else {
			r.Set(uOutValid, 0)
			r.Set(outValid, b2u(full))
			r.Set(outData, hold)
		}
	})
	return r
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
