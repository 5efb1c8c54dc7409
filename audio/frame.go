// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Frame is one callback's worth of interleaved samples in the device's
// native format. It is a view over memory owned by the audio host and is
// only valid until the callback returns.
type Frame struct {
	format SampleFormat
	f32    []float32
	i16    []int16
}

// Float32Frame wraps buf as a Frame.
func Float32Frame(buf []float32) Frame { return Frame{format: Float32, f32: buf} }

// Int16Frame wraps buf as a Frame.
func Int16Frame(buf []int16) Frame { return Frame{format: Int16, i16: buf} }

// Format reports the sample format of the frame.
func (f Frame) Format() SampleFormat { return f.format }

// Len returns the number of samples (not frames per channel).
func (f Frame) Len() int {
	switch f.format {
	case Float32:
		return len(f.f32)
	case Int16:
		return len(f.i16)
	}
	return 0
}

// At returns the i-th sample.
func (f Frame) At(i int) Sample {
	if f.format == Int16 {
		return Int16Sample(f.i16[i])
	}
	return Float32Sample(f.f32[i])
}

// Set stores s at position i, converting it to the frame format.
func (f Frame) Set(i int, s Sample) error {
	v, err := Convert(s, f.format)
	if err != nil {
		return err
	}
	switch f.format {
	case Float32:
		f.f32[i] = v.f32
	case Int16:
		f.i16[i] = v.i16
	default:
		return fmt.Errorf("%w: frame %s", ErrUnsupportedSampleFormat, f.format)
	}
	return nil
}

// Zero fills the samples from position i to the end with silence.
func (f Frame) Zero(from int) {
	switch f.format {
	case Float32:
		clear(f.f32[from:])
	case Int16:
		clear(f.i16[from:])
	}
}
