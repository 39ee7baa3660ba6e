// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	ErrNoMagic         = errors.New("file does not start with NIST_1A id")
	ErrBadHeaderSize   = errors.New("header size is not a positive integer")
	ErrMalformedField  = errors.New("malformed header field line")
	ErrBadTypeFlag     = errors.New("invalid type flag in header field")
	ErrBadStringLength = errors.New("declared string length does not match payload")
	ErrMissingEndHead  = errors.New("end_head terminator missing from header")
	ErrHeaderOverflow  = errors.New("serialized header exceeds block size")
	ErrBadFieldName    = errors.New("field name contains whitespace or is empty")
	ErrBadFieldValue   = errors.New("string field value contains a newline")
)
