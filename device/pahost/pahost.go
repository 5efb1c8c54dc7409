// SPDX-License-Identifier: EPL-2.0

package pahost

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/audtap/audio"
	"github.com/ik5/audtap/device"
)

// standardRates are probed in ascending order.
var standardRates = []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000, 176400, 192000}

// probeFormats are probed in order; the first one the device accepts is
// reported first.
var probeFormats = []audio.SampleFormat{audio.Float32, audio.Int16}

// Options tunes the streams a Host opens.
type Options struct {
	// FramesPerBuffer is the callback size in frames. Zero lets PortAudio
	// choose.
	FramesPerBuffer int
}

// Host is the PortAudio implementation of device.Host.
type Host struct {
	opts Options

	mu     sync.Mutex
	closed bool
}

// New initializes PortAudio. Close must be called to terminate it.
func New(opts Options) (*Host, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}
	return &Host{opts: opts}, nil
}

func (h *Host) DefaultDevice(dir device.Direction) (device.Device, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHostClosed
	}

	var (
		info *portaudio.DeviceInfo
		err  error
	)
	switch dir {
	case device.Input:
		info, err = portaudio.DefaultInputDevice()
	case device.Output:
		info, err = portaudio.DefaultOutputDevice()
	default:
		return nil, fmt.Errorf("%w: %s", device.ErrInvalidDirection, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrNoDevice, err)
	}
	if info == nil {
		return nil, device.ErrNoDevice
	}

	return &Device{info: info, opts: h.opts}, nil
}

// Close terminates PortAudio. Streams must be closed first.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("terminating portaudio: %w", err)
	}
	return nil
}

// Device wraps a PortAudio device.
type Device struct {
	info *portaudio.DeviceInfo
	opts Options
}

func (d *Device) Name() string { return d.info.Name }

func (d *Device) maxChannels(dir device.Direction) int {
	if dir == device.Input {
		return d.info.MaxInputChannels
	}
	return d.info.MaxOutputChannels
}

func (d *Device) params(dir device.Direction, channels int, rate float64) portaudio.StreamParameters {
	p := portaudio.StreamParameters{
		SampleRate:      rate,
		FramesPerBuffer: portaudio.FramesPerBufferUnspecified,
	}
	if d.opts.FramesPerBuffer > 0 {
		p.FramesPerBuffer = d.opts.FramesPerBuffer
	}

	if dir == device.Input {
		p.Input = portaudio.StreamDeviceParameters{
			Device:   d.info,
			Channels: channels,
			Latency:  d.info.DefaultLowInputLatency,
		}
	} else {
		p.Output = portaudio.StreamDeviceParameters{
			Device:   d.info,
			Channels: channels,
			Latency:  d.info.DefaultLowOutputLatency,
		}
	}
	return p
}

// SupportedConfigs probes the standard rates plus the device default rate
// at the maximum channel count, once per sample format.
func (d *Device) SupportedConfigs(dir device.Direction) ([]device.ConfigRange, error) {
	channels := d.maxChannels(dir)
	if channels < 1 {
		return nil, nil
	}

	rates := append([]int(nil), standardRates...)
	if def := int(d.info.DefaultSampleRate); def > 0 {
		rates = append(rates, def)
	}

	var ranges []device.ConfigRange
	for _, format := range probeFormats {
		lo, hi := 0, 0
		for _, r := range rates {
			if portaudio.IsFormatSupported(d.params(dir, channels, float64(r)), probeCallback(format)) != nil {
				continue
			}
			if lo == 0 || r < lo {
				lo = r
			}
			hi = max(hi, r)
		}
		if hi > 0 {
			ranges = append(ranges, device.ConfigRange{
				Channels:      channels,
				MinSampleRate: lo,
				MaxSampleRate: hi,
				Format:        format,
			})
		}
	}

	return ranges, nil
}

// probeCallback returns a callback whose argument type tells PortAudio
// which sample format to check.
func probeCallback(format audio.SampleFormat) any {
	if format == audio.Int16 {
		return func([]int16) {}
	}
	return func([]float32) {}
}

func (d *Device) OpenInputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Input, cfg, onFrame, onError)
}

func (d *Device) OpenOutputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Output, cfg, onFrame, onError)
}

func (d *Device) open(dir device.Direction, cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := func(flags portaudio.StreamCallbackFlags) {
		if onError == nil || flags == 0 {
			return
		}
		if flags&(portaudio.InputOverflow|portaudio.OutputOverflow) != 0 {
			onError(device.ErrStreamOverflow)
		}
		if flags&(portaudio.InputUnderflow|portaudio.OutputUnderflow) != 0 {
			onError(device.ErrStreamUnderflow)
		}
	}

	var callback any
	switch cfg.Format {
	case audio.Float32:
		callback = func(buf []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			report(flags)
			onFrame(audio.Float32Frame(buf))
		}
	case audio.Int16:
		callback = func(buf []int16, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			report(flags)
			onFrame(audio.Int16Frame(buf))
		}
	}

	st, err := portaudio.OpenStream(d.params(dir, cfg.Channels, float64(cfg.SampleRate)), callback)
	if err != nil {
		return nil, fmt.Errorf("opening %s stream %s: %w", dir, cfg, err)
	}

	return &Stream{st: st}, nil
}

// Stream wraps a callback-driven PortAudio stream.
type Stream struct {
	st      *portaudio.Stream
	once    sync.Once
	started bool
}

func (s *Stream) Start() error {
	if err := s.st.Start(); err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	s.started = true
	return nil
}

// Close stops the stream, which waits for the callback in flight, and
// then releases it.
func (s *Stream) Close() error {
	var err error
	s.once.Do(func() {
		if s.started {
			if serr := s.st.Stop(); serr != nil {
				err = fmt.Errorf("stopping stream: %w", serr)
			}
		}
		if cerr := s.st.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing stream: %w", cerr)
		}
	})
	return err
}
