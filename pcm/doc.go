// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between raw SPHERE sample bytes and integer
// samples.
//
// SPHERE stores uncompressed PCM as fixed-width signed integers, channel
// interleaved per frame. The byte order within each sample is declared by
// the header's sample_byte_format field: "01" is little-endian, "10" is
// big-endian, "0123"/"3210" the 4-byte equivalents, and "1" the
// order-free single-byte case.
//
// Decode unpacks raw bytes into interleaved int samples:
//
//	samples, err := pcm.Decode(raw, 2, pcm.BigEndian, 1, nframes)
//
// Encode packs them back:
//
//	raw, err := pcm.Encode(samples, 2, pcm.BigEndian, 1)
//
// The two are exact inverses for any samples that fit the declared
// width. Supported widths are 1, 2 and 4 bytes; anything else reports
// ErrUnsupportedWidth. Decode reports ErrTruncatedData when raw cannot
// cover the requested frames, and Encode reports ErrPartialFrame when the
// sample count does not divide into whole frames.
package pcm
