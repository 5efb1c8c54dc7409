// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

// ErrUnknownWaitMode is returned by ParseWaitMode.
var ErrUnknownWaitMode = errors.New("unknown wait mode")
