// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files for the capture and playback
// pipelines.
//
// It uses github.com/go-audio/wav for the RIFF container and supports two
// encodings:
//   - 16-bit signed integer PCM (format tag 1)
//   - 32-bit IEEE float (format tag 3)
//
// # Writing
//
// Writer appends one sample at a time and patches the header sizes on
// Close:
//
//	w, err := wav.Create("take.wav", audio.StreamConfig{
//	    Channels: 2, SampleRate: 48000, Format: audio.Float32,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	_ = w.WriteSample(audio.Float32Sample(0.5))
//	err = w.Close()
//
// # Reading
//
// Decoder loads the complete data chunk and returns an audio.Source of
// float32 samples in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(src)
package wav
