// SPDX-License-Identifier: EPL-2.0

// Package playback plays an audio file on the default output device.
//
// The file is decoded into memory up front and moved into a Buffer that
// only the output callback touches. When the buffer runs out the
// callback keeps producing silence and Drained is closed.
//
// Play returns according to its WaitMode. WaitEstimate sleeps for the
// file length in frames divided by the negotiated device rate, which
// does not track the device and may cut off or overshoot the tail.
// WaitDrained waits for the buffer to empty instead.
//
// There is no resampling or channel mapping: samples are written to the
// device in file order, so a file whose rate or channel count differs
// from the device plays at the wrong speed or with shifted channels.
package playback
