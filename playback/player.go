// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ik5/audtap/audio"
	"github.com/ik5/audtap/device"
	"github.com/ik5/audtap/formats/aiff"
	"github.com/ik5/audtap/formats/mp3"
	"github.com/ik5/audtap/formats/vorbis"
	"github.com/ik5/audtap/formats/wav"
)

// WaitMode selects how Play decides the audio has finished.
type WaitMode int

const (
	// WaitEstimate sleeps for the file duration at the device rate.
	WaitEstimate WaitMode = iota
	// WaitDrained blocks until the output callback runs out of samples.
	WaitDrained
)

func (m WaitMode) String() string {
	switch m {
	case WaitEstimate:
		return "estimate"
	case WaitDrained:
		return "drained"
	}
	return fmt.Sprintf("wait(%d)", int(m))
}

// ParseWaitMode accepts the names returned by WaitMode.String.
func ParseWaitMode(s string) (WaitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "estimate":
		return WaitEstimate, nil
	case "drained":
		return WaitDrained, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWaitMode, s)
}

// DefaultFormat is used for paths whose extension has no registered decoder.
const DefaultFormat = "wav"

// DefaultRegistry returns a registry with every decoder of the module,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// Player plays a file on the default output device.
type Player struct {
	Host device.Host
	// Registry defaults to DefaultRegistry.
	Registry *audio.Registry
	// Logger defaults to slog.Default.
	Logger *slog.Logger
	Wait   WaitMode
}

func (p *Player) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Play decodes path completely, streams it and returns after the wait
// policy considers playback done.
func (p *Player) Play(path string) error {
	log := p.logger()

	sess, err := device.OpenOutput(p.Host)
	if err != nil {
		return err
	}
	log.Info("output negotiated", "device", sess.Device.Name(), "config", sess.Config.String())

	samples, channels, rate, err := p.load(path)
	if err != nil {
		return err
	}
	if channels != sess.Config.Channels || rate != sess.Config.SampleRate {
		log.Warn("file layout differs from device, playing unconverted",
			"file_channels", channels, "file_rate", rate)
	}
	frames := len(samples) / channels

	buf := NewBuffer(samples)
	stream, err := sess.Open(buf.Fill, func(err error) {
		log.Warn("output stream error", "err", err)
	})
	if err != nil {
		return err
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("starting output stream: %w", err)
	}

	switch p.Wait {
	case WaitDrained:
		<-buf.Drained()
	default:
		time.Sleep(sess.Config.Duration(frames))
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("closing output stream: %w", err)
	}

	log.Debug("playback finished", "path", path, "frames", frames, "wait", p.Wait.String())
	return nil
}

// load reads and decodes the whole file, returning its samples, channel
// count and sample rate.
func (p *Player) load(path string) ([]float32, int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	reg := p.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	dec, err := reg.ForPath(path, DefaultFormat)
	if err != nil {
		return nil, 0, 0, err
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	channels := max(src.Channels(), 1)
	p.logger().Debug("file decoded",
		"path", path,
		"samples", len(samples),
		"channels", channels,
		"sample_rate", src.SampleRate(),
	)

	return samples, channels, src.SampleRate(), nil
}
