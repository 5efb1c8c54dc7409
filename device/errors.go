// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrNoDevice          = errors.New("no device available")
	ErrNoSupportedConfig = errors.New("no supported stream configuration")
	ErrInvalidDirection  = errors.New("invalid stream direction")
	ErrStreamOverflow    = errors.New("stream overflow")
	ErrStreamUnderflow   = errors.New("stream underflow")
)
