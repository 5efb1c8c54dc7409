// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile wraps the oggvorbis failure to read the identification headers.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
