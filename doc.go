// SPDX-License-Identifier: EPL-2.0

// Package audtap records the default audio input to a WAV file and plays
// audio files on the default output.
//
// Record and Play are the one-call entry points. They open PortAudio,
// negotiate the first configuration the default device reports at its
// highest sample rate, and run the capture or playback pipeline:
//
//	// blocks until Enter is pressed
//	if err := audtap.Record("take.wav"); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := audtap.Play("take.wav"); err != nil {
//	    log.Fatal(err)
//	}
//
// Config selects another host ("sim" runs without audio hardware), a
// callback size, the playback wait policy and where logs and prompts go.
//
// # Console
//
// Recording stops when byte 13 is read from the console. When the
// console is a terminal it is put into raw mode for the duration of the
// recording so Enter arrives as that byte without line buffering; in raw
// mode Ctrl-C does not raise SIGINT.
//
// # Packages
//
//   - audio: sample formats, conversion, decoder registry
//   - device: host abstraction and session negotiation
//   - device/pahost, device/simhost: PortAudio and simulated hosts
//   - capture, playback: the two pipelines
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: codecs
package audtap
