// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestFrame_Float32(t *testing.T) {
	t.Parallel()

	buf := []float32{0.1, 0.2, 0.3, 0.4}
	f := Float32Frame(buf)

	if f.Format() != Float32 {
		t.Errorf("Format() = %s, want f32", f.Format())
	}
	if f.Len() != 4 {
		t.Errorf("Len() = %d, want 4", f.Len())
	}
	if got := f.At(2); got != Float32Sample(0.3) {
		t.Errorf("At(2) = %+v, want 0.3", got)
	}

	if err := f.Set(0, Int16Sample(math.MinInt16)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if buf[0] != -1 {
		t.Errorf("Set() stored %v, want -1 in the underlying buffer", buf[0])
	}

	f.Zero(2)
	if buf[1] != 0.2 || buf[2] != 0 || buf[3] != 0 {
		t.Errorf("Zero(2) left %v", buf)
	}
}

func TestFrame_Int16(t *testing.T) {
	t.Parallel()

	buf := make([]int16, 3)
	f := Int16Frame(buf)

	if err := f.Set(1, Float32Sample(1)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if buf[1] != math.MaxInt16 {
		t.Errorf("Set() stored %d, want %d", buf[1], math.MaxInt16)
	}
	if got := f.At(1); got.Int16() != math.MaxInt16 || got.Format() != Int16 {
		t.Errorf("At(1) = %+v", got)
	}
}

func TestFrame_ZeroValue(t *testing.T) {
	t.Parallel()

	var f Frame
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	if err := f.Set(0, Float32Sample(0)); !errors.Is(err, ErrUnsupportedSampleFormat) {
		t.Errorf("Set() on zero frame error = %v, want ErrUnsupportedSampleFormat", err)
	}
	f.Zero(0)
}
