// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"sync/atomic"
)

// GatedReader returns Data one byte per Read call, but only after Gate is
// closed. It reports io.EOF once Data is exhausted.
type GatedReader struct {
	Gate <-chan struct{}
	Data []byte

	reads atomic.Int64
	pos   int
}

func (r *GatedReader) Read(p []byte) (int, error) {
	if r.Gate != nil {
		<-r.Gate
	}
	if r.pos >= len(r.Data) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	p[0] = r.Data[r.pos]
	r.pos++
	r.reads.Add(1)
	return 1, nil
}

// Consumed returns how many bytes were handed out.
func (r *GatedReader) Consumed() int { return int(r.reads.Load()) }
