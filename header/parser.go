// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// Magic is the NIST SPHERE identification line.
	Magic = "NIST_1A\n"

	// DefaultSize is the canonical total header block size in bytes,
	// preamble and padding included.
	DefaultSize = 1024

	// preambleSize covers the magic line plus the 8-byte size line.
	preambleSize = 16

	endHead = "end_head"
)

// Read consumes a complete SPHERE header block from r: the magic line, the
// declared block size, every field line up to the end_head terminator and
// the padding that fills the rest of the block. It returns the parsed
// fields and the declared block size, which is the offset of the first
// sample byte. Exactly that many bytes are read from r.
func Read(r io.Reader) (*Fields, int, error) {
	pre := make([]byte, preambleSize)
	if _, err := io.ReadFull(r, pre); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoMagic, err)
	}
	if string(pre[:len(Magic)]) != Magic {
		return nil, 0, ErrNoMagic
	}

	size, err := strconv.Atoi(strings.TrimSpace(string(pre[len(Magic):])))
	if err != nil || size <= preambleSize {
		return nil, 0, ErrBadHeaderSize
	}

	block := make([]byte, size-preambleSize)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, 0, fmt.Errorf("reading header block: %w", err)
	}

	fields, err := parseBlock(block)
	if err != nil {
		return nil, 0, err
	}
	return fields, size, nil
}

// Parse decodes a complete in-memory header block, preamble included.
func Parse(raw []byte) (*Fields, error) {
	fields, _, err := Read(bytes.NewReader(raw))
	return fields, err
}

// parseBlock decodes the field section that follows the preamble.
func parseBlock(block []byte) (*Fields, error) {
	fields := NewFields()
	for _, raw := range bytes.Split(block, []byte{'\n'}) {
		line := string(raw)
		if i := strings.IndexByte(line, ';'); i >= 0 { // drop comment
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t\r")
		if line == endHead {
			return fields, nil
		}

		fld, err := parseField(line)
		if err != nil {
			return nil, err
		}
		fields.Set(fld)
	}
	return nil, ErrMissingEndHead
}

// parseField decodes a single `name type value` line.
func parseField(line string) (Field, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || parts[0] == "" {
		return Field{}, fmt.Errorf("%w: %q", ErrMalformedField, line)
	}
	name, flag, value := parts[0], parts[1], parts[2]

	switch {
	case flag == "-i":
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %q", ErrMalformedField, line)
		}
		return IntField(name, v), nil

	case flag == "-r":
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %q", ErrMalformedField, line)
		}
		return RealField(name, v), nil

	case strings.HasPrefix(flag, "-s"):
		n, err := strconv.Atoi(flag[2:])
		if err != nil || n < 0 {
			return Field{}, fmt.Errorf("%w: %q", ErrBadTypeFlag, flag)
		}
		if len(value) != n {
			return Field{}, fmt.Errorf("%w: declared %d, got %d bytes", ErrBadStringLength, n, len(value))
		}
		return StringField(name, value), nil
	}

	return Field{}, fmt.Errorf("%w: %q", ErrBadTypeFlag, flag)
}
