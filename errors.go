// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package hulotte

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBusy is returned by Run when a run is already in progress on the same
// bridge. The hardware model is not reentrant; concurrent frames need one
// bridge instance each.
//
var ErrBusy = errors.New("bridge is already running a frame")

// A TimeoutError reports that the edge budget was exhausted before the
// output lane filled, typically because the model stalled and never
// asserted output valid.
//
type TimeoutError struct {
	Edges    uint64 // edges run when the budget expired
	Received int    // output samples captured so far
	Size     int    // frame size
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("simulation timed out after %d edges (%d/%d output samples)",
		e.Edges, e.Received, e.Size)
}

// A PartialTransferError reports that the output frame completed while the
// input lane still had samples to send. The output frame returned alongside
// it is fully populated.
//
type PartialTransferError struct {
	Sent int // input samples accepted by the model
	Size int // frame size
}

func (e *PartialTransferError) Error() string {
	return fmt.Sprintf("partial input transfer: model accepted %d/%d samples", e.Sent, e.Size)
}

// A ProtocolError reports that an optimistic handshake acceptance was
// contradicted by an advisory ready signal: the lane counted a sample as
// accepted while the model was observably not ready. The affected samples
// may have been dropped by the model.
//
type ProtocolError struct {
	Edge uint64 // first edge at which the contradiction was observed
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("handshake assumption violated: ready low during assumed acceptance at edge %d", e.Edge)
}
