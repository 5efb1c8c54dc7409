// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtap/audio"
)

// WAVE format tags.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// framesPerFlush is the number of frames buffered before handing them to
// the encoder.
const framesPerFlush = 1024

// Writer appends samples to a WAV file. It is not safe for concurrent use.
type Writer struct {
	out    io.WriteSeeker
	closer io.Closer
	enc    *gowav.Encoder
	cfg    audio.StreamConfig
	buf    *goaudio.IntBuffer

	written int
	closed  bool
}

// Create creates path and writes a header matching cfg.
func Create(path string, cfg audio.StreamConfig) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	w, err := NewWriter(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f

	return w, nil
}

// NewWriter writes a WAV header matching cfg to out. Float32 streams use
// the IEEE float tag with 32 bits per sample, Int16 streams use PCM with 16.
// Close does not close out.
func NewWriter(out io.WriteSeeker, cfg audio.StreamConfig) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tag := formatPCM
	if cfg.Format == audio.Float32 {
		tag = formatIEEEFloat
	}

	w := &Writer{
		out: out,
		enc: gowav.NewEncoder(out, cfg.SampleRate, cfg.BitDepth(), cfg.Channels, tag),
		cfg: cfg,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: cfg.Channels, SampleRate: cfg.SampleRate},
			Data:           make([]int, 0, framesPerFlush*cfg.Channels),
			SourceBitDepth: cfg.BitDepth(),
		},
	}

	// emit the header now so an empty capture still finalizes into a valid file
	if err := w.enc.Write(w.buf); err != nil {
		return nil, fmt.Errorf("writing WAV header: %w", err)
	}

	return w, nil
}

// Format returns the sample format stored in the file.
func (w *Writer) Format() audio.SampleFormat { return w.cfg.Format }

// Config returns the stream configuration declared in the header.
func (w *Writer) Config() audio.StreamConfig { return w.cfg }

// Samples returns how many samples were accepted so far.
func (w *Writer) Samples() int { return w.written }

// WriteSample converts s to the file format and appends it.
func (w *Writer) WriteSample(s audio.Sample) error {
	if w.closed {
		return ErrWriterClosed
	}

	v, err := audio.Convert(s, w.cfg.Format)
	if err != nil {
		return err
	}

	switch w.cfg.Format {
	case audio.Float32:
		// the encoder writes 32-bit values verbatim, so pass the IEEE bits
		w.buf.Data = append(w.buf.Data, int(int32(math.Float32bits(v.Float32()))))
	case audio.Int16:
		w.buf.Data = append(w.buf.Data, int(v.Int16()))
	}
	w.written++

	if len(w.buf.Data) == cap(w.buf.Data) {
		return w.flush()
	}
	return nil
}

func (w *Writer) flush() error {
	if len(w.buf.Data) == 0 {
		return nil
	}

	// only whole frames reach the encoder; a trailing partial frame stays buffered
	whole := len(w.buf.Data) - len(w.buf.Data)%w.cfg.Channels
	pending := w.buf.Data[whole:]
	w.buf.Data = w.buf.Data[:whole]

	err := w.enc.Write(w.buf)

	n := copy(w.buf.Data[:cap(w.buf.Data)], pending)
	w.buf.Data = w.buf.Data[:n]

	if err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	return nil
}

// Close flushes buffered frames, patches the header sizes and closes the
// file opened by Create. A trailing partial frame is discarded.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	err := w.flush()
	if cerr := w.enc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("finalizing WAV header: %w", cerr)
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing WAV file: %w", cerr)
		}
	}

	return err
}
