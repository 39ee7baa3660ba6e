// SPDX-License-Identifier: EPL-2.0

// Package spheretest builds SPHERE file images byte by byte for tests.
// The builders are independent of the production codecs so tests never
// verify a codec against itself.
package spheretest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// BlockSize is the header block size every builder emits.
const BlockSize = 1024

// Header assembles a complete 1024-byte header block from raw field
// lines (each without its trailing newline).
func Header(lines ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("NIST_1A\n")
	fmt.Fprintf(&buf, "%7d\n", BlockSize)
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("end_head\n")
	buf.Write(bytes.Repeat([]byte{' '}, BlockSize-buf.Len()))
	return buf.Bytes()
}

// File concatenates a header block and sample data into a file image.
func File(headerLines []string, data []byte) []byte {
	return append(Header(headerLines...), data...)
}

// RM1Lines is a header field set with the literal content of a Resource
// Management corpus utterance.
func RM1Lines() []string {
	return []string{
		"database_id -s3 RM1",
		"database_version -s3 1.0",
		"utterance_id -s9 adg0_st01",
		"channel_count -i 1",
		"sample_count -i 48743",
		"sample_rate -i 16000",
		"sample_min -i -4176",
		"sample_max -i 6010",
		"sample_n_bytes -i 2",
		"sample_byte_format -s2 01",
		"sample_sig_bits -i 16",
	}
}

// Int16LE packs samples as 16-bit little-endian bytes.
func Int16LE(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Int16BE packs samples as 16-bit big-endian bytes.
func Int16BE(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Ramp16 generates n deterministic 16-bit samples spanning the signed
// range, useful when tests need recognizable frame content.
func Ramp16(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(i*7 - n/2)
	}
	return out
}

// Sine16 generates n samples of a sine wave at the given frequency and
// sample rate, scaled close to full 16-bit range.
func Sine16(n, sampleRate int, freq float64) []int16 {
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(30000 * math.Sin(2*math.Pi*freq*t))
	}
	return out
}
