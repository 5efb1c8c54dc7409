// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audtap/utils"
)

// Sample is a single PCM value tagged with its format.
type Sample struct {
	format SampleFormat
	f32    float32
	i16    int16
}

// Float32Sample wraps v as a Float32 sample.
func Float32Sample(v float32) Sample { return Sample{format: Float32, f32: v} }

// Int16Sample wraps v as an Int16 sample.
func Int16Sample(v int16) Sample { return Sample{format: Int16, i16: v} }

// Format reports the tag of s.
func (s Sample) Format() SampleFormat { return s.format }

// Float32 returns the float value. It is only meaningful for Float32 samples.
func (s Sample) Float32() float32 { return s.f32 }

// Int16 returns the integer value. It is only meaningful for Int16 samples.
func (s Sample) Int16() int16 { return s.i16 }

// Convert maps s into target using the full-scale float/int16 PCM mapping.
// Formats other than Float32 and Int16 are rejected on either side.
func Convert(s Sample, target SampleFormat) (Sample, error) {
	switch s.format {
	case Float32:
		switch target {
		case Float32:
			return s, nil
		case Int16:
			return Int16Sample(utils.Float32ToInt16(s.f32)), nil
		}
	case Int16:
		switch target {
		case Float32:
			return Float32Sample(utils.Int16ToFloat32(s.i16)), nil
		case Int16:
			return s, nil
		}
	default:
		return Sample{}, fmt.Errorf("%w: source %s", ErrUnsupportedSampleFormat, s.format)
	}

	return Sample{}, fmt.Errorf("%w: target %s", ErrUnsupportedSampleFormat, target)
}
