// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrUnsupportedEncoding  = errors.New("only 16-bit PCM and 32-bit float WAV supported")
	ErrWriterClosed         = errors.New("WAV writer already closed")
)
