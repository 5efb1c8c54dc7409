// SPDX-License-Identifier: EPL-2.0

package simhost

import "errors"

var (
	// ErrHostClosed is returned by a host after Close.
	ErrHostClosed = errors.New("simulated host closed")

	// ErrConfigOutOfRange indicates a stream config outside the device range.
	ErrConfigOutOfRange = errors.New("stream config outside the simulated range")

	// ErrStreamClosed is returned when starting a closed stream.
	ErrStreamClosed = errors.New("simulated stream closed")
)
