// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files for playback.
//
// Decoding is backed by github.com/go-audio/aiff. Integer PCM of 8, 16,
// 24 and 32 bits is accepted in any channel count and sample rate, and
// samples are delivered as interleaved float32 in [-1, 1]. AIFF-C
// compressed files are rejected with ErrNotAiffFile or
// ErrUnsupportedBitDepth depending on how far the header parses.
//
//	f, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // ...
//	}
//
// 16-bit samples use the same asymmetric scaling as the rest of the
// module, so a file written from an Int16 capture plays back unchanged.
package aiff
