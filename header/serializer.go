// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Serialize encodes fields into a complete header block of DefaultSize
// bytes: magic line, size line, one `name type value` line per field in
// insertion order, the end_head terminator and space padding up to the
// block size. The sample region of a file written with this block starts
// at exactly DefaultSize.
func Serialize(fields *Fields) ([]byte, error) {
	return SerializeSize(fields, DefaultSize)
}

// SerializeSize is Serialize with an explicit block size, for headers that
// carry more fields than the canonical 1024-byte block can hold. size must
// be a multiple of DefaultSize.
func SerializeSize(fields *Fields, size int) ([]byte, error) {
	if size <= 0 || size%DefaultSize != 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrHeaderOverflow, size)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	buf.WriteString(Magic)
	fmt.Fprintf(&buf, "%7d\n", size)

	for _, name := range fields.Names() {
		fld, _ := fields.Get(name)
		if err := writeField(&buf, fld); err != nil {
			return nil, err
		}
	}
	buf.WriteString(endHead + "\n")

	if buf.Len() > size {
		return nil, fmt.Errorf("%w: %d bytes into a %d byte block", ErrHeaderOverflow, buf.Len(), size)
	}
	buf.Write(bytes.Repeat([]byte{' '}, size-buf.Len()))

	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, fld Field) error {
	if fld.Name == "" || strings.ContainsAny(fld.Name, " \t\n") {
		return fmt.Errorf("%w: %q", ErrBadFieldName, fld.Name)
	}

	switch fld.Kind {
	case Integer:
		fmt.Fprintf(buf, "%s -i %d\n", fld.Name, fld.Int)
	case Real:
		fmt.Fprintf(buf, "%s -r %s\n", fld.Name, strconv.FormatFloat(fld.Real, 'g', -1, 64))
	case String:
		// Trailing blanks would be eaten by the parser and break the
		// declared length on re-read, so they are rejected up front.
		if strings.ContainsRune(fld.Str, '\n') || strings.TrimRight(fld.Str, " \t\r") != fld.Str {
			return fmt.Errorf("%w: %q", ErrBadFieldValue, fld.Str)
		}
		fmt.Fprintf(buf, "%s -s%d %s\n", fld.Name, len(fld.Str), fld.Str)
	default:
		return fmt.Errorf("%w: kind %d", ErrBadTypeFlag, fld.Kind)
	}
	return nil
}
