// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for playback.
//
// This package uses github.com/jfreymuth/oggvorbis. The decoder produces
// float32 samples natively, so no integer conversion happens here; the
// source passes interleaved samples through in the file's channel count
// and sample rate.
//
// Reads smaller than one frame are served from an internal carry buffer,
// so callers may size dst freely.
package vorbis
