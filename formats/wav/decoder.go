// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtap/audio"
)

// Source serves the decoded PCM data of a WAV file held in memory.
type Source struct {
	cfg  audio.StreamConfig
	data []byte
	pos  int
}

func (s *Source) SampleRate() int { return s.cfg.SampleRate }
func (s *Source) Channels() int   { return s.cfg.Channels }
func (s *Source) Close() error    { return nil }

// Config returns the stream description found in the header.
func (s *Source) Config() audio.StreamConfig { return s.cfg }

// Len returns the total number of samples in the data chunk.
func (s *Source) Len() int { return len(s.data) / (s.cfg.BitDepth() / 8) }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	width := s.cfg.BitDepth() / 8

	n := 0
	for n < len(dst) && s.pos+width <= len(s.data) {
		b := s.data[s.pos : s.pos+width]
		switch s.cfg.Format {
		case audio.Float32:
			dst[n] = math.Float32frombits(binary.LittleEndian.Uint32(b))
		case audio.Int16:
			v, _ := audio.Convert(audio.Int16Sample(int16(binary.LittleEndian.Uint16(b))), audio.Float32)
			dst[n] = v.Float32()
		}
		s.pos += width
		n++
	}

	if s.pos+width > len(s.data) {
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

// Decode parses the header and loads the whole data chunk into memory.
// Only 16-bit integer PCM and 32-bit IEEE float files are accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	return decode(r)
}

func decode(r io.Reader) (*Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading WAV data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	tag := dec.WavAudioFormat
	extensible := tag == formatExtensible
	if extensible {
		var err error
		if tag, err = extensibleTag(rs); err != nil {
			return nil, fmt.Errorf("%w: extensible fmt chunk: %w", ErrUnsupportedEncoding, err)
		}
	}

	var format audio.SampleFormat
	switch {
	case tag == formatPCM && dec.BitDepth == 16:
		format = audio.Int16
	case tag == formatIEEEFloat && dec.BitDepth == 32:
		format = audio.Float32
	default:
		return nil, fmt.Errorf("%w: format tag %d, %d bits", ErrUnsupportedEncoding, tag, dec.BitDepth)
	}

	seek := dec.FwdToPCM
	if extensible {
		// extensibleTag moved the reader
		seek = dec.Rewind
	}
	if err := seek(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrUnsupportedWavChunks
	}

	// a header written by an interrupted recorder may overstate the size,
	// so take what is there rather than insisting on PCMSize bytes
	data, err := io.ReadAll(io.LimitReader(dec.PCMChunk, int64(dec.PCMSize)))
	if err != nil {
		return nil, fmt.Errorf("reading WAV samples: %w", err)
	}

	return &Source{
		cfg: audio.StreamConfig{
			Channels:   int(dec.NumChans),
			SampleRate: int(dec.SampleRate),
			Format:     format,
		},
		data: data,
	}, nil
}

// Layout of a WAVE_FORMAT_EXTENSIBLE fmt chunk body. The SubFormat GUID
// begins with the format tag.
const (
	extensibleFmtSize = 40
	subFormatOffset   = 24
)

// extensibleTag reads the format tag out of the SubFormat GUID of the fmt
// chunk. go-audio discards the extension bytes, so the chunks are walked
// again from the start of rs.
func extensibleTag(rs io.ReadSeeker) (uint16, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if ch.ID != riff.FmtID {
			if _, err := io.CopyN(io.Discard, rs, int64(ch.Size)); err != nil {
				return 0, err
			}
			continue
		}

		body := make([]byte, ch.Size)
		if _, err := io.ReadFull(rs, body); err != nil {
			return 0, err
		}
		if len(body) < extensibleFmtSize {
			return 0, fmt.Errorf("fmt chunk is %d bytes, want %d", len(body), extensibleFmtSize)
		}
		return binary.LittleEndian.Uint16(body[subFormatOffset:]), nil
	}
}
