// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// SampleFormat is the numeric encoding of a single PCM sample.
type SampleFormat int

const (
	// FormatUnknown is the zero value and is never accepted by the pipelines.
	FormatUnknown SampleFormat = iota
	// Float32 is 32-bit IEEE float in [-1, 1].
	Float32
	// Int16 is 16-bit signed integer PCM.
	Int16
)

// BitDepth returns the number of bits per sample, or 0 for unsupported formats.
func (f SampleFormat) BitDepth() int {
	switch f {
	case Float32:
		return 32
	case Int16:
		return 16
	}
	return 0
}

// Supported reports whether f is one of Float32 or Int16.
func (f SampleFormat) Supported() bool {
	return f == Float32 || f == Int16
}

func (f SampleFormat) String() string {
	switch f {
	case Float32:
		return "f32"
	case Int16:
		return "i16"
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// StreamConfig describes a negotiated device stream. It is fixed for the
// lifetime of a session.
type StreamConfig struct {
	Channels   int
	SampleRate int
	Format     SampleFormat
}

// Validate checks that the configuration can drive a pipeline.
func (c StreamConfig) Validate() error {
	if c.Channels < 1 {
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if !c.Format.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedSampleFormat, c.Format)
	}
	return nil
}

// BitDepth is a shorthand for c.Format.BitDepth().
func (c StreamConfig) BitDepth() int { return c.Format.BitDepth() }

// Duration returns how long the given number of frames lasts at this rate.
func (c StreamConfig) Duration(frames int) time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

func (c StreamConfig) String() string {
	return fmt.Sprintf("%d ch, %d Hz, %s", c.Channels, c.SampleRate, c.Format)
}
