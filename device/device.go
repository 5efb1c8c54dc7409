// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/ik5/audtap/audio"
)

// Direction selects the capture or playback side of a device.
type Direction int

const (
	Input Direction = iota + 1
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// FrameFunc is the real-time data callback. For input streams the frame
// holds captured samples; for output streams it must be filled in place.
// The frame must not be retained after the call returns.
type FrameFunc func(frame audio.Frame)

// ErrorFunc receives asynchronous stream errors.
type ErrorFunc func(err error)

// Host is the platform audio layer.
type Host interface {
	// DefaultDevice returns the default device for dir, or ErrNoDevice.
	DefaultDevice(dir Direction) (Device, error)
	// Close releases the host.
	Close() error
}

// Device is a single audio endpoint.
type Device interface {
	Name() string
	// SupportedConfigs lists the configuration ranges the device accepts
	// for dir, in the order the host reports them.
	SupportedConfigs(dir Direction) ([]ConfigRange, error)
	OpenInputStream(cfg audio.StreamConfig, onFrame FrameFunc, onError ErrorFunc) (Stream, error)
	OpenOutputStream(cfg audio.StreamConfig, onFrame FrameFunc, onError ErrorFunc) (Stream, error)
}

// Stream is an open device stream.
type Stream interface {
	Start() error
	// Close stops the stream and releases it. After Close returns the data
	// callback is never invoked again.
	Close() error
}

// ConfigRange is one supported stream configuration with a sample rate range.
type ConfigRange struct {
	Channels      int
	MinSampleRate int
	MaxSampleRate int
	Format        audio.SampleFormat
}

// WithMaxSampleRate commits to the highest rate of the range.
func (r ConfigRange) WithMaxSampleRate() audio.StreamConfig {
	return audio.StreamConfig{
		Channels:   r.Channels,
		SampleRate: r.MaxSampleRate,
		Format:     r.Format,
	}
}
