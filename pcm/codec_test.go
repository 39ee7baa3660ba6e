// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecode_BigEndian16(t *testing.T) {
	t.Parallel()

	raw := []byte{0x01, 0x02, 0xFF, 0xFE}
	samples, err := Decode(raw, 2, BigEndian, 1, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := []int{0x0102, -2}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestDecode_LittleEndian16(t *testing.T) {
	t.Parallel()

	raw := []byte{0x02, 0x01, 0xFE, 0xFF}
	samples, err := Decode(raw, 2, LittleEndian, 1, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := []int{0x0102, -2}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestDecode_SingleByte(t *testing.T) {
	t.Parallel()

	raw := []byte{0x00, 0x7F, 0x80, 0xFF}
	samples, err := Decode(raw, 1, SingleByte, 2, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := []int{0, 127, -128, -1}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestDecode_InterleavingIsPreserved(t *testing.T) {
	t.Parallel()

	// Two stereo frames: L0 R0 L1 R1.
	raw := []byte{0x00, 0x10, 0x00, 0x20, 0x00, 0x30, 0x00, 0x40}
	samples, err := Decode(raw, 2, BigEndian, 2, 2)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := []int{0x0010, 0x0020, 0x0030, 0x0040}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %#x, want %#x", i, samples[i], want[i])
		}
	}
}

func TestDecode_Truncated(t *testing.T) {
	t.Parallel()

	_, err := Decode(make([]byte, 6), 2, LittleEndian, 2, 2)
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("Decode() error = %v, want ErrTruncatedData", err)
	}
}

func TestDecode_UnsupportedWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, 3, 8, -2} {
		_, err := Decode(make([]byte, 24), width, LittleEndian, 1, 2)
		if !errors.Is(err, ErrUnsupportedWidth) {
			t.Errorf("Decode() width %d error = %v, want ErrUnsupportedWidth", width, err)
		}
	}
}

func TestDecode_BadByteFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", "11", "012", "abc", "0123"} {
		_, err := Decode(make([]byte, 8), 2, format, 1, 2)
		if !errors.Is(err, ErrBadByteFormat) {
			t.Errorf("Decode() format %q error = %v, want ErrBadByteFormat", format, err)
		}
	}
}

func TestDecode_BadChannelCount(t *testing.T) {
	t.Parallel()

	_, err := Decode(make([]byte, 8), 2, LittleEndian, 0, 2)
	if !errors.Is(err, ErrBadChannelCount) {
		t.Errorf("Decode() error = %v, want ErrBadChannelCount", err)
	}
}

func TestEncode_PartialFrame(t *testing.T) {
	t.Parallel()

	_, err := Encode([]int{1, 2, 3}, 2, LittleEndian, 2)
	if !errors.Is(err, ErrPartialFrame) {
		t.Errorf("Encode() error = %v, want ErrPartialFrame", err)
	}
}

func TestEncode_OutputLength(t *testing.T) {
	t.Parallel()

	raw, err := Encode([]int{1, 2, 3, 4, 5, 6}, 4, BigEndian4, 3)
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}

	if len(raw) != 24 {
		t.Errorf("len(raw) = %d, want 24", len(raw))
	}
}

func TestEncode_ByteOrder(t *testing.T) {
	t.Parallel()

	big, err := Encode([]int{0x0102}, 2, BigEndian, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}
	little, err := Encode([]int{0x0102}, 2, LittleEndian, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v, want nil", err)
	}

	if !bytes.Equal(big, []byte{0x01, 0x02}) {
		t.Errorf("big-endian bytes = %v, want [1 2]", big)
	}

	if !bytes.Equal(little, []byte{0x02, 0x01}) {
		t.Errorf("little-endian bytes = %v, want [2 1]", little)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		width    int
		format   string
		channels int
		samples  []int
	}{
		{"mono8", 1, SingleByte, 1, []int{0, 1, -1, 127, -128}},
		{"mono16be", 2, BigEndian, 1, []int{0, 32767, -32768, 12345}},
		{"stereo16le", 2, LittleEndian, 2, []int{100, -100, 32767, -32768}},
		{"quad32be", 4, BigEndian4, 4, []int{1 << 30, -(1 << 30), 7, -7}},
		{"mono32le", 4, LittleEndian4, 1, []int{2147483647, -2147483648, 0}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw, err := Encode(tc.samples, tc.width, tc.format, tc.channels)
			if err != nil {
				t.Fatalf("Encode() error = %v, want nil", err)
			}

			frames := len(tc.samples) / tc.channels
			got, err := Decode(raw, tc.width, tc.format, tc.channels, frames)
			if err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}

			for i := range tc.samples {
				if got[i] != tc.samples[i] {
					t.Errorf("round trip [%d] = %d, want %d", i, got[i], tc.samples[i])
				}
			}
		})
	}
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	if !ValidFormat(BigEndian, 2) || !ValidFormat(LittleEndian4, 4) || !ValidFormat(SingleByte, 1) {
		t.Error("ValidFormat() rejected a supported format")
	}

	if ValidFormat(BigEndian, 4) || ValidFormat("20", 2) {
		t.Error("ValidFormat() accepted an unsupported format")
	}
}

func TestDefaultFormat(t *testing.T) {
	t.Parallel()

	for width, want := range map[int]string{1: SingleByte, 2: LittleEndian, 4: LittleEndian4} {
		if got := DefaultFormat(width); got != want {
			t.Errorf("DefaultFormat(%d) = %q, want %q", width, got, want)
		}
	}
}
