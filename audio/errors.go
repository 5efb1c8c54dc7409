// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedSampleFormat = errors.New("unsupported sample format")
	ErrInvalidConfig           = errors.New("invalid stream configuration")
	ErrUnknownFormat           = errors.New("no decoder registered for format")
)
