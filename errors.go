// SPDX-License-Identifier: EPL-2.0

package sphere

import "errors"

var (
	ErrClosed           = errors.New("session is closed")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrParamsFrozen     = errors.New("cannot change parameters after starting to write")
	ErrMissingParams    = errors.New("required parameters not set")
	ErrShortData        = errors.New("sample data shorter than declared sample_count")
	ErrOutOfRange       = errors.New("frame position not in range")
	ErrPartialFrame     = errors.New("data length is not a whole number of frames")
)
