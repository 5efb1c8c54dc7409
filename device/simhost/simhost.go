// SPDX-License-Identifier: EPL-2.0

package simhost

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/ik5/audtap/audio"
	"github.com/ik5/audtap/device"
)

// Options configures the simulated device. Zero fields take the defaults
// noted on each field.
type Options struct {
	Channels      int                // 1
	MinSampleRate int                // 8000
	MaxSampleRate int                // 48000
	Format        audio.SampleFormat // Float32

	// FramesPerBuffer is the callback size in frames. Default 256.
	FramesPerBuffer int

	// Frequency and Amplitude shape the captured sine. Defaults 440 Hz, 0.5.
	Frequency float64
	Amplitude float64

	// Unpaced delivers callbacks as fast as they are consumed instead of
	// at the sample rate.
	Unpaced bool
}

func (o Options) withDefaults() Options {
	if o.Channels <= 0 {
		o.Channels = 1
	}
	if o.MinSampleRate <= 0 {
		o.MinSampleRate = 8000
	}
	if o.MaxSampleRate <= 0 {
		o.MaxSampleRate = 48000
	}
	if o.Format == audio.FormatUnknown {
		o.Format = audio.Float32
	}
	if o.FramesPerBuffer <= 0 {
		o.FramesPerBuffer = 256
	}
	if o.Frequency <= 0 {
		o.Frequency = 440
	}
	if o.Amplitude <= 0 {
		o.Amplitude = 0.5
	}
	return o
}

// Host serves one simulated device for both directions.
type Host struct {
	dev    *Device
	closed atomic.Bool
}

// New returns a simulated host.
func New(opts Options) *Host {
	return &Host{dev: &Device{opts: opts.withDefaults()}}
}

func (h *Host) DefaultDevice(device.Direction) (device.Device, error) {
	if h.closed.Load() {
		return nil, ErrHostClosed
	}
	return h.dev, nil
}

func (h *Host) Close() error {
	h.closed.Store(true)
	return nil
}

// Device is the simulated endpoint.
type Device struct {
	opts Options
}

func (d *Device) Name() string { return "simulated" }

func (d *Device) SupportedConfigs(device.Direction) ([]device.ConfigRange, error) {
	return []device.ConfigRange{{
		Channels:      d.opts.Channels,
		MinSampleRate: d.opts.MinSampleRate,
		MaxSampleRate: d.opts.MaxSampleRate,
		Format:        d.opts.Format,
	}}, nil
}

func (d *Device) OpenInputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Input, cfg, onFrame)
}

func (d *Device) OpenOutputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Output, cfg, onFrame)
}

func (d *Device) open(dir device.Direction, cfg audio.StreamConfig, onFrame device.FrameFunc) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SampleRate < d.opts.MinSampleRate || cfg.SampleRate > d.opts.MaxSampleRate || cfg.Channels > d.opts.Channels {
		return nil, fmt.Errorf("%w: %s", ErrConfigOutOfRange, cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Stream{
		dir:     dir,
		cfg:     cfg,
		opts:    d.opts,
		onFrame: onFrame,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}, nil
}

// Stream delivers callbacks from its own goroutine between Start and Close.
type Stream struct {
	dir     device.Direction
	cfg     audio.StreamConfig
	opts    Options
	onFrame device.FrameFunc

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	started bool
	closed  bool

	callbacks atomic.Int64
}

func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if !s.started {
		s.started = true
		go s.run()
	}
	return nil
}

// Close stops delivery and waits for the running callback to return.
func (s *Stream) Close() error {
	s.mu.Lock()
	started := s.started
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	if started {
		<-s.done
	}
	return nil
}

// Callbacks returns how many data callbacks have completed.
func (s *Stream) Callbacks() int { return int(s.callbacks.Load()) }

func (s *Stream) run() {
	defer close(s.done)

	frames := s.opts.FramesPerBuffer
	size := frames * s.cfg.Channels

	limiter := rate.NewLimiter(rate.Inf, 0)
	if !s.opts.Unpaced {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.SampleRate), frames)
	}

	var buf audio.Frame
	switch s.cfg.Format {
	case audio.Int16:
		buf = audio.Int16Frame(make([]int16, size))
	default:
		buf = audio.Float32Frame(make([]float32, size))
	}

	step := 2 * math.Pi * s.opts.Frequency / float64(s.cfg.SampleRate)
	frame := 0

	for {
		if err := limiter.WaitN(s.ctx, frames); err != nil {
			return
		}

		switch s.dir {
		case device.Input:
			for i := range frames {
				v := float32(s.opts.Amplitude * math.Sin(step*float64(frame+i)))
				for c := range s.cfg.Channels {
					_ = buf.Set(i*s.cfg.Channels+c, audio.Float32Sample(v))
				}
			}
		case device.Output:
			buf.Zero(0)
		}
		frame += frames

		s.onFrame(buf)
		s.callbacks.Add(1)
	}
}
