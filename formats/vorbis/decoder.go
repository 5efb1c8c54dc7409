// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audtap/audio"
)

// oggReader is the part of oggvorbis.Reader the source depends on.
// Read fills p with interleaved samples, always a whole number of frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	buf        []float32
	pending    []float32 // decoded samples that did not fit the last dst
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(s.pending) > 0 {
		n := copy(dst, s.pending)
		s.pending = s.pending[n:]
		return n, nil
	}

	// the decoder only hands out whole frames, so ask for at least one
	want := max(len(dst)-len(dst)%s.channels, s.channels)
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}

	got, err := s.dec.Read(s.buf[:want])
	n := copy(dst, s.buf[:got])
	s.pending = s.buf[n:got]

	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

type Decoder struct{}

// Decode parses the Vorbis identification and setup headers.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		buf:        make([]float32, 4096),
	}, nil
}
