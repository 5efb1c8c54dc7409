// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/ik5/audtap/audio"
)

// Session is a device with a negotiated stream configuration.
type Session struct {
	Device    Device
	Config    audio.StreamConfig
	Direction Direction
}

// OpenInput negotiates a capture session on the host's default input device.
func OpenInput(host Host) (*Session, error) {
	return open(host, Input)
}

// OpenOutput negotiates a playback session on the host's default output device.
func OpenOutput(host Host) (*Session, error) {
	return open(host, Output)
}

// open takes the first range the device reports, at its maximum rate.
// There is no fallback to later ranges.
func open(host Host, dir Direction) (*Session, error) {
	dev, err := host.DefaultDevice(dir)
	if err != nil {
		return nil, fmt.Errorf("%s device: %w", dir, err)
	}
	if dev == nil {
		return nil, fmt.Errorf("%s device: %w", dir, ErrNoDevice)
	}

	ranges, err := dev.SupportedConfigs(dir)
	if err != nil {
		return nil, fmt.Errorf("querying %s configs of %q: %w", dir, dev.Name(), err)
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%q: %w", dev.Name(), ErrNoSupportedConfig)
	}

	cfg := ranges[0].WithMaxSampleRate()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", dev.Name(), err)
	}

	return &Session{Device: dev, Config: cfg, Direction: dir}, nil
}

// Open builds the stream for the session direction.
func (s *Session) Open(onFrame FrameFunc, onError ErrorFunc) (Stream, error) {
	var (
		st  Stream
		err error
	)

	switch s.Direction {
	case Input:
		st, err = s.Device.OpenInputStream(s.Config, onFrame, onError)
	case Output:
		st, err = s.Device.OpenOutputStream(s.Config, onFrame, onError)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, s.Direction)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s stream on %q: %w", s.Direction, s.Device.Name(), err)
	}

	return st, nil
}
