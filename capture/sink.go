// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"sync"

	"github.com/ik5/audtap/audio"
)

// SampleWriter is a destination of captured samples.
type SampleWriter interface {
	// Format is the sample format the writer stores.
	Format() audio.SampleFormat
	WriteSample(s audio.Sample) error
	Close() error
}

// Sink is the writer shared between the capture callback and the
// controlling goroutine. The callback only ever tries the lock, so it
// never blocks behind finalization.
type Sink struct {
	mu sync.Mutex
	w  SampleWriter
}

// NewSink returns a sink holding w.
func NewSink(w SampleWriter) *Sink {
	return &Sink{w: w}
}

// TryWrite converts every sample of frame to the writer format and
// appends it. It reports false, writing nothing, when the sink is busy or
// already emptied. errs counts samples the writer rejected.
func (s *Sink) TryWrite(frame audio.Frame) (ok bool, errs int) {
	if !s.mu.TryLock() {
		return false, 0
	}
	defer s.mu.Unlock()

	if s.w == nil {
		return false, 0
	}

	target := s.w.Format()
	for i := range frame.Len() {
		v, err := audio.Convert(frame.At(i), target)
		if err == nil {
			err = s.w.WriteSample(v)
		}
		if err != nil {
			errs++
		}
	}

	return true, errs
}

// Take removes the writer, leaving the sink empty.
func (s *Sink) Take() (SampleWriter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return nil, ErrSinkEmpty
	}

	w := s.w
	s.w = nil
	return w, nil
}
