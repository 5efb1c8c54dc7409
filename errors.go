// SPDX-License-Identifier: EPL-2.0

package audtap

import "errors"

// ErrUnknownHost is returned for a host name other than "pa" or "sim".
var ErrUnknownHost = errors.New("unknown audio host")
