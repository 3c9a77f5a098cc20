// Copyright 2026 The Hulotte Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hulotte moves fixed-size frames of samples into and out of a
clock-driven hardware model over a ready/valid handshake.

The bridge owns the model's clock and reset: there is no external clock
source. Each call to Bridge.Run holds the model in reset for a configurable
number of edges, then alternates rising and falling edges, driving the input
lane and sampling the output lane on falling edges, until a full output
frame has been captured. A trace sink, when attached, receives exactly one
snapshot per edge.

Hardware models are opaque register-mapped entities; see the dut package for
the Model handle and a reference echo model.
*/
package hulotte
