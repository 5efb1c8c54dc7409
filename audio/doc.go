// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample model shared by devices, codecs and the
// pipelines.
//
// # Samples and frames
//
// A device stream carries either Float32 or Int16 samples. Sample is a
// tagged value of one of those formats and Frame is a typed view of a
// callback buffer. Convert maps between the two:
//
//	s, err := audio.Convert(audio.Float32Sample(0.5), audio.Int16)
//	// s.Int16() == 16383
//
// The mapping is full scale to full scale and asymmetric: positive
// values scale by 32767, negative values by 32768, so both -1.0 and 1.0
// survive a round trip exactly. Float input is clamped to [-1, 1] first.
//
// # Sources and decoders
//
// Source is the decoded form of a file: interleaved float32 samples in
// [-1, 1] plus rate and channel count.
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// A Registry maps file extensions to Decoders; ForPath picks one for a
// path and ReadAll drains a Source into memory.
package audio
