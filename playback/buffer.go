// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"sync"

	"github.com/ik5/audtap/audio"
)

// Buffer holds decoded samples for the output callback. It is consumed
// from the front and must only be used by one goroutine; Drained is the
// exception and may be watched from anywhere.
type Buffer struct {
	samples []float32
	pos     int

	drained chan struct{}
	once    sync.Once
}

// NewBuffer wraps samples. An empty buffer starts out drained.
func NewBuffer(samples []float32) *Buffer {
	b := &Buffer{samples: samples, drained: make(chan struct{})}
	if len(samples) == 0 {
		b.markDrained()
	}
	return b
}

func (b *Buffer) markDrained() {
	b.once.Do(func() { close(b.drained) })
}

// Pop removes the next sample. Once the buffer is exhausted it returns
// silence and reports false.
func (b *Buffer) Pop() (float32, bool) {
	if b.pos >= len(b.samples) {
		b.markDrained()
		return 0, false
	}

	v := b.samples[b.pos]
	b.pos++
	return v, true
}

// Remaining returns how many samples are left.
func (b *Buffer) Remaining() int { return len(b.samples) - b.pos }

// Drained is closed the first time a sample is requested from an
// exhausted buffer.
func (b *Buffer) Drained() <-chan struct{} { return b.drained }

// Fill writes one popped sample into every slot of frame, converting to
// the frame format. Slots past the end of the buffer are zeroed.
func (b *Buffer) Fill(frame audio.Frame) {
	n := frame.Len()
	for i := range n {
		v, ok := b.Pop()
		if !ok {
			frame.Zero(i)
			return
		}
		_ = frame.Set(i, audio.Float32Sample(v))
	}
}
