// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrUnsupportedWidth = errors.New("sample width must be 1, 2 or 4 bytes")
	ErrTruncatedData    = errors.New("sample data shorter than requested frames")
	ErrBadByteFormat    = errors.New("unrecognized sample byte format")
	ErrBadChannelCount  = errors.New("channel count must be at least 1")
	ErrPartialFrame     = errors.New("sample count is not a whole number of frames")
)
