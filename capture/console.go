// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"errors"
	"fmt"
	"io"
)

// StopByte ends a recording. It is what a terminal in raw mode sends for
// Enter.
const StopByte = 13

// WaitForStop reads console one byte at a time until StopByte. Other
// bytes are ignored and nothing past StopByte is consumed.
func WaitForStop(console io.Reader) error {
	var b [1]byte

	for {
		n, err := console.Read(b[:])
		if n == 1 && b[0] == StopByte {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return ErrConsoleClosed
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConsoleClosed, err)
		}
	}
}
