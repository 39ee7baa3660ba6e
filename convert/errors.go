// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrNotWAV           = errors.New("not a WAV file")
	ErrNotAIFF          = errors.New("not an AIFF file")
	ErrNotMP3           = errors.New("not an MP3 stream")
	ErrNotVorbis        = errors.New("not an Ogg Vorbis stream")
	ErrUnsupportedDepth = errors.New("source bit depth has no SPHERE sample width")
)
