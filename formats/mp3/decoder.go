// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audtap/audio"
)

// go-mp3 always yields interleaved stereo 16-bit little-endian PCM.
const (
	channels    = 2
	bytesPerInt = 2
)

// pcmReader is the part of gomp3.Decoder the source depends on.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	carry      int // odd byte left over from the previous Read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerInt
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.carry])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	total := s.carry
	var err error
	for total < bytesPerInt && err == nil {
		var n int
		n, err = s.dec.Read(s.buf[total:])
		if n == 0 && err == nil {
			break
		}
		total += n
	}
	samples := total / bytesPerInt

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerInt:]))
		f, _ := audio.Convert(audio.Int16Sample(v), audio.Float32)
		dst[i] = f.Float32()
	}

	s.carry = total % bytesPerInt
	if s.carry > 0 {
		s.buf[0] = s.buf[total-1]
	}

	return samples, err
}

type Decoder struct{}

// Decode reads the first frame header to learn the sample rate and then
// decodes lazily as samples are requested.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
