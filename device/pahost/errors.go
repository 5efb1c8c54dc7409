// SPDX-License-Identifier: EPL-2.0

package pahost

import "errors"

// ErrHostClosed is returned by a host after Close.
var ErrHostClosed = errors.New("portaudio host closed")
