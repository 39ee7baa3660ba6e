// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
)

// Byte format codes as they appear in the sample_byte_format header field.
// The digits list byte positions by significance, most significant first,
// so "10" stores the high byte before the low byte.
const (
	LittleEndian  = "01"
	BigEndian     = "10"
	LittleEndian4 = "0123"
	BigEndian4    = "3210"
	SingleByte    = "1"
)

// byteOrder maps a format code to big-endianness for a given width.
// Single-byte samples have no order; any of the accepted codes works.
func byteOrder(format string, width int) (bigEndian bool, err error) {
	switch width {
	case 1:
		switch format {
		case SingleByte, "0", "":
			return false, nil
		}
	case 2:
		switch format {
		case LittleEndian:
			return false, nil
		case BigEndian:
			return true, nil
		}
	case 4:
		switch format {
		case LittleEndian4:
			return false, nil
		case BigEndian4:
			return true, nil
		}
	}
	return false, fmt.Errorf("%w: %q for width %d", ErrBadByteFormat, format, width)
}

// ValidFormat reports whether format is a recognized byte format code for
// the given sample width.
func ValidFormat(format string, width int) bool {
	_, err := byteOrder(format, width)
	return err == nil
}

// DefaultFormat returns the byte format code this package emits for a
// sample width when the caller declares none.
func DefaultFormat(width int) string {
	switch width {
	case 1:
		return SingleByte
	case 4:
		return LittleEndian4
	default:
		return LittleEndian
	}
}

// Decode interprets raw as frames×channels signed integer samples of the
// given byte width, reordering each sample's bytes per format. Channels
// stay interleaved: the result holds frame 0's channels first, then frame
// 1's, and so on.
func Decode(raw []byte, width int, format string, channels, frames int) ([]int, error) {
	if width != 1 && width != 2 && width != 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadChannelCount, channels)
	}
	big, err := byteOrder(format, width)
	if err != nil {
		return nil, err
	}

	count := frames * channels
	if len(raw) < count*width {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedData, count*width, len(raw))
	}

	out := make([]int, count)
	switch width {
	case 1:
		for i := range out {
			out[i] = int(int8(raw[i]))
		}
	case 2:
		if big {
			for i := range out {
				out[i] = int(int16(binary.BigEndian.Uint16(raw[2*i:])))
			}
		} else {
			for i := range out {
				out[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
			}
		}
	case 4:
		if big {
			for i := range out {
				out[i] = int(int32(binary.BigEndian.Uint32(raw[4*i:])))
			}
		} else {
			for i := range out {
				out[i] = int(int32(binary.LittleEndian.Uint32(raw[4*i:])))
			}
		}
	}
	return out, nil
}

// Encode is the inverse of Decode: it packs interleaved integer samples
// into raw bytes of the given width, ordering each sample's bytes per
// format. The sample count must cover whole frames, so the output length
// is always a multiple of width×channels. Values outside the width's
// range are truncated to it.
func Encode(samples []int, width int, format string, channels int) ([]byte, error) {
	if width != 1 && width != 2 && width != 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadChannelCount, channels)
	}
	big, err := byteOrder(format, width)
	if err != nil {
		return nil, err
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrPartialFrame, len(samples), channels)
	}

	out := make([]byte, len(samples)*width)
	switch width {
	case 1:
		for i, s := range samples {
			out[i] = byte(int8(s))
		}
	case 2:
		if big {
			for i, s := range samples {
				binary.BigEndian.PutUint16(out[2*i:], uint16(int16(s)))
			}
		} else {
			for i, s := range samples {
				binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
			}
		}
	case 4:
		if big {
			for i, s := range samples {
				binary.BigEndian.PutUint32(out[4*i:], uint32(int32(s)))
			}
		} else {
			for i, s := range samples {
				binary.LittleEndian.PutUint32(out[4*i:], uint32(int32(s)))
			}
		}
	}
	return out, nil
}
