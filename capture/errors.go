// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	// ErrSinkEmpty is returned by Take once the writer was already taken.
	ErrSinkEmpty = errors.New("sink holds no writer")

	// ErrConsoleClosed is returned when the console ends or fails before
	// the stop byte arrives.
	ErrConsoleClosed = errors.New("console closed before stop")
)
