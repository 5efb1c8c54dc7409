// SPDX-License-Identifier: EPL-2.0

// Package device negotiates audio device sessions.
//
// A Host hands out default input and output devices. Each Device reports
// the configuration ranges it supports; OpenInput and OpenOutput commit to
// the first reported range at its maximum sample rate:
//
//	sess, err := device.OpenInput(host)
//	if err != nil {
//	    return err
//	}
//	stream, err := sess.Open(onFrame, onError)
//
// The data callback runs on the host's real-time thread. It receives an
// audio.Frame view that is only valid for the duration of the call.
//
// Implementations live in sub packages: pahost wraps PortAudio and simhost
// simulates a device without hardware.
package device
