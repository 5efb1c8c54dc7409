// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/audtap/audio"
	"github.com/ik5/audtap/device"
)

// ErrOpenFailed is a stock error for Device.OpenErr.
var ErrOpenFailed = errors.New("audiotest: open failed")

// Script drives a FakeStream once it is started.
type Script struct {
	// Frames is the number of callbacks to run.
	Frames int
	// FramesPerBuffer is the number of frames (per channel) per callback.
	FramesPerBuffer int
	// Interval is slept between callbacks.
	Interval time.Duration
	// Signal produces the captured value for sample index i of input streams.
	Signal func(i int) float32
	// Errors are reported through the error callback before the first frame.
	Errors []error
}

// Host is an in-memory device.Host.
type Host struct {
	Input  *Device
	Output *Device
	Err    error

	closed atomic.Bool
}

func (h *Host) DefaultDevice(dir device.Direction) (device.Device, error) {
	if h.Err != nil {
		return nil, h.Err
	}

	var d *Device
	switch dir {
	case device.Input:
		d = h.Input
	case device.Output:
		d = h.Output
	}
	if d == nil {
		return nil, device.ErrNoDevice
	}
	return d, nil
}

func (h *Host) Close() error {
	h.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (h *Host) Closed() bool { return h.closed.Load() }

// Device is an in-memory device.Device whose streams follow Script.
type Device struct {
	DeviceName string
	Ranges     []device.ConfigRange
	ConfigErr  error
	OpenErr    error
	Script     Script

	mu       sync.Mutex
	streams  []*Stream
	finished chan struct{}
	once     sync.Once
}

// NewDevice returns a device exposing a single range.
func NewDevice(name string, r device.ConfigRange, script Script) *Device {
	return &Device{DeviceName: name, Ranges: []device.ConfigRange{r}, Script: script}
}

func (d *Device) Name() string { return d.DeviceName }

func (d *Device) SupportedConfigs(device.Direction) ([]device.ConfigRange, error) {
	if d.ConfigErr != nil {
		return nil, d.ConfigErr
	}
	return d.Ranges, nil
}

func (d *Device) OpenInputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Input, cfg, onFrame, onError)
}

func (d *Device) OpenOutputStream(cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	return d.open(device.Output, cfg, onFrame, onError)
}

func (d *Device) open(dir device.Direction, cfg audio.StreamConfig, onFrame device.FrameFunc, onError device.ErrorFunc) (device.Stream, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}

	s := &Stream{
		Direction: dir,
		Config:    cfg,
		dev:       d,
		script:    d.Script,
		onFrame:   onFrame,
		onError:   onError,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
	}

	d.mu.Lock()
	d.streams = append(d.streams, s)
	d.mu.Unlock()

	return s, nil
}

// Finished is closed once the first stream opened on d ran its whole script.
func (d *Device) Finished() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finished == nil {
		d.finished = make(chan struct{})
	}
	return d.finished
}

func (d *Device) markFinished() {
	d.Finished()
	d.once.Do(func() { close(d.finished) })
}

// LastStream returns the most recently opened stream, or nil.
func (d *Device) LastStream() *Stream {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.streams) == 0 {
		return nil
	}
	return d.streams[len(d.streams)-1]
}

// Stream runs its Script on a goroutine between Start and Close.
type Stream struct {
	Direction device.Direction
	Config    audio.StreamConfig

	dev     *Device
	script  Script
	onFrame device.FrameFunc
	onError device.ErrorFunc

	startOnce sync.Once
	closeOnce sync.Once
	started   atomic.Bool
	closed    atomic.Bool
	calls     atomic.Int64

	stop     chan struct{}
	done     chan struct{}
	finished chan struct{}

	mu     sync.Mutex
	played []float32
}

func (s *Stream) Start() error {
	s.startOnce.Do(func() {
		s.started.Store(true)
		go s.run()
	})
	return nil
}

func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.stop)
		if s.started.Load() {
			<-s.done
		}
	})
	return nil
}

// Started reports whether Start was called.
func (s *Stream) Started() bool { return s.started.Load() }

// Closed reports whether Close was called.
func (s *Stream) Closed() bool { return s.closed.Load() }

// Calls returns how many data callbacks ran.
func (s *Stream) Calls() int { return int(s.calls.Load()) }

// Finished is closed once every scripted callback ran.
func (s *Stream) Finished() <-chan struct{} { return s.finished }

// Played returns every sample output callbacks produced, as float32.
func (s *Stream) Played() []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]float32(nil), s.played...)
}

func (s *Stream) run() {
	defer close(s.done)

	for _, err := range s.script.Errors {
		if s.onError != nil {
			s.onError(err)
		}
	}

	size := s.script.FramesPerBuffer * s.Config.Channels
	index := 0

	for range s.script.Frames {
		select {
		case <-s.stop:
			return
		default:
		}

		frame := s.newFrame(size)
		if s.Direction == device.Input && s.script.Signal != nil {
			for i := range size {
				_ = frame.Set(i, audio.Float32Sample(s.script.Signal(index+i)))
			}
		}
		index += size

		s.onFrame(frame)
		s.calls.Add(1)

		if s.Direction == device.Output {
			s.record(frame)
		}

		if s.script.Interval > 0 {
			select {
			case <-s.stop:
				return
			case <-time.After(s.script.Interval):
			}
		}
	}

	close(s.finished)
	s.dev.markFinished()
}

func (s *Stream) newFrame(size int) audio.Frame {
	if s.Config.Format == audio.Int16 {
		return audio.Int16Frame(make([]int16, size))
	}
	return audio.Float32Frame(make([]float32, size))
}

func (s *Stream) record(frame audio.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range frame.Len() {
		v, _ := audio.Convert(frame.At(i), audio.Float32)
		s.played = append(s.played, v.Float32())
	}
}
