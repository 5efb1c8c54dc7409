// SPDX-License-Identifier: EPL-2.0

// Package pahost implements device.Host on top of PortAudio through
// github.com/gordonklaus/portaudio. Building it requires cgo and the
// PortAudio development headers (portaudio19-dev on Debian, portaudio on
// Homebrew).
//
// PortAudio has no notion of configuration ranges, so SupportedConfigs
// synthesizes them by probing standard sample rates with
// IsFormatSupported. Callback status flags surface through the stream
// error callback as device.ErrStreamOverflow and device.ErrStreamUnderflow.
package pahost
