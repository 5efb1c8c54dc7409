// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// rampSource yields total samples counting up from 0 in steps of step.
// chunk caps how many samples a single ReadSamples call returns.
type rampSource struct {
	channels int
	total    int
	chunk    int
	step     float32
	pos      int
}

func (m *rampSource) SampleRate() int { return 8000 }
func (m *rampSource) Channels() int   { return m.channels }
func (m *rampSource) Close() error    { return nil }

func (m *rampSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.total {
		return 0, io.EOF
	}

	n := min(len(dst), m.total-m.pos)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}
	for i := range n {
		dst[i] = float32(m.pos+i) * m.step
	}
	m.pos += n

	if m.pos >= m.total {
		return n, io.EOF
	}
	return n, nil
}

var errBroken = errors.New("broken source")

// brokenSource returns a few samples and then fails.
type brokenSource struct {
	calls int
}

func (b *brokenSource) SampleRate() int { return 8000 }
func (b *brokenSource) Channels() int   { return 1 }
func (b *brokenSource) Close() error    { return nil }

func (b *brokenSource) ReadSamples(dst []float32) (int, error) {
	b.calls++
	if b.calls > 1 {
		return 0, errBroken
	}
	n := min(len(dst), 3)
	for i := range n {
		dst[i] = 0.5
	}
	return n, nil
}

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return &rampSource{channels: 1, total: 10, step: 0.01}, nil
}
