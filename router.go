// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

import (
	"github.com/pkg/errors"

	"github.com/madellimac/hulotte/dut"
)

// A RoutingMode selects which signal group on the model carries the logical
// transfer. It is fixed for the lifetime of a bridge.
//
type RoutingMode uint8

const (
	// Direct addresses the model's plain handshake interface.
	Direct RoutingMode = iota
	// UartRouted addresses the UART-routed interface behind the model's
	// bypass flag. The input lane has no true ready signal on this path and
	// falls back to optimistic single-cycle acceptance.
	UartRouted
)

func (m RoutingMode) String() string {
	if m == UartRouted {
		return "uart"
	}
	return "direct"
}

// Signal names of the model's common group and of the two per-mode lane
// groups.
const (
	sigReset  = "reset"
	sigClk    = "clk"
	sigBypass = "bypass"

	sigInValid  = "in_valid"
	sigInReady  = "in_ready"
	sigInData   = "in_data"
	sigOutValid = "out_valid"
	sigOutReady = "out_ready"
	sigOutData  = "out_data"

	sigUartInValid  = "uart_in_valid"
	sigUartInReady  = "uart_in_ready"
	sigUartInData   = "uart_in_data"
	sigUartOutValid = "uart_out_valid"
	sigUartOutReady = "uart_out_ready"
	sigUartOutData  = "uart_out_data"
)

// A router binds the logical lane signals to concrete pins on a model,
// resolved once at bridge construction.
//
type router struct {
	in    laneSignals
	out   laneSignals
	reset int
	clk   int
}

// newRouter resolves the signal group selected by mode on m and drives the
// model's bypass flag accordingly. In UART mode the input lane is bound
// without a true ready pin; if the model happens to expose one anyway it is
// attached as an advisory signal used only to detect contradicted
// acceptance assumptions.
//
func newRouter(m dut.Model, mode RoutingMode) (*router, error) {
	rt := &router{}

	var err error
	if rt.reset, err = m.Pin(sigReset); err != nil {
		return nil, errors.Wrap(err, "routing")
	}
	if rt.clk, err = m.Pin(sigClk); err != nil {
		return nil, errors.Wrap(err, "routing")
	}

	switch mode {
	case Direct:
		rt.in, err = bindLane(m, sigInValid, sigInReady, sigInData, false)
		if err != nil {
			return nil, err
		}
		rt.out, err = bindLane(m, sigOutValid, sigOutReady, sigOutData, false)
		if err != nil {
			return nil, err
		}
		// A direct-only model may omit the bypass flag entirely.
		if pin, err := m.Pin(sigBypass); err == nil {
			m.Set(pin, 0)
		}
	case UartRouted:
		rt.in, err = bindLane(m, sigUartInValid, sigUartInReady, sigUartInData, true)
		if err != nil {
			return nil, err
		}
		// The outward ready is driven by the bridge itself, so the output
		// lane keeps it even on the UART path when the model exposes one.
		rt.out, err = bindLane(m, sigUartOutValid, sigUartOutReady, sigUartOutData, false)
		if err != nil {
			return nil, err
		}
		pin, err := m.Pin(sigBypass)
		if err != nil {
			return nil, errors.Wrap(err, "routing: uart mode")
		}
		m.Set(pin, 1)
	default:
		return nil, errors.Errorf("unknown routing mode %d", mode)
	}
	return rt, nil
}

// bindLane resolves one lane's signal triad. valid and data are required,
// ready is optional: a lane without one advances optimistically. With
// advisoryOnly set, a present ready pin is not trusted for handshake
// completion and is bound as an advisory observer instead.
//
func bindLane(m dut.Model, valid, ready, data string, advisoryOnly bool) (laneSignals, error) {
	sig := laneSignals{ready: -1, advisory: -1}

	var err error
	if sig.valid, err = m.Pin(valid); err != nil {
		return sig, errors.Wrap(err, "routing")
	}
	if sig.data, err = m.Pin(data); err != nil {
		return sig, errors.Wrap(err, "routing")
	}
	if pin, err := m.Pin(ready); err == nil {
		if advisoryOnly {
			sig.advisory = pin
		} else {
			sig.ready = pin
			sig.hasReady = true
		}
	}
	return sig, nil
}
