// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files for playback.
//
// It wraps github.com/hajimehoshi/go-mp3, which always produces
// interleaved stereo 16-bit PCM regardless of the channel mode in the
// stream. The source therefore reports two channels and the file's
// native sample rate, and delivers samples as float32 in [-1, 1].
//
//	f, _ := os.Open("song.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // ...
//	}
package mp3
