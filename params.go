// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"fmt"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/pcm"
)

// Well-known SPHERE header field names.
const (
	FieldDatabaseID       = "database_id"
	FieldDatabaseVersion  = "database_version"
	FieldUtteranceID      = "utterance_id"
	FieldChannelCount     = "channel_count"
	FieldSampleCount      = "sample_count"
	FieldSampleRate       = "sample_rate"
	FieldSampleMin        = "sample_min"
	FieldSampleMax        = "sample_max"
	FieldSampleNBytes     = "sample_n_bytes"
	FieldSampleByteFormat = "sample_byte_format"
	FieldSampleSigBits    = "sample_sig_bits"
	FieldSampleCoding     = "sample_coding"
)

// CodingPCM is the default sample_coding when the header declares none.
const CodingPCM = "pcm"

// Params is the decoded, application-facing view of a SPHERE header.
// String fields are empty and numeric fields zero when the header does
// not carry them.
type Params struct {
	DatabaseID      string
	DatabaseVersion string
	UtteranceID     string
	ChannelCount    int
	SampleCount     int
	SampleRate      int
	SampleMin       int
	SampleMax       int
	SampleBytes     int    // width of one sample in bytes: 1, 2 or 4
	ByteFormat      string // sample_byte_format code, e.g. "01" or "10"
	SigBits         int    // significant bits per sample
	Coding          string // sample_coding, "pcm" when unset
}

// FrameSize returns the byte size of one frame across all channels.
func (p Params) FrameSize() int { return p.ChannelCount * p.SampleBytes }

// WaveParams is the conventional-waveform projection of Params, shaped
// like the parameter tuple of typical PCM container APIs.
type WaveParams struct {
	NumChannels int
	SampleWidth int
	FrameRate   int
	NumFrames   int
	CompType    string
	CompName    string
}

// Wave projects p onto the conventional-waveform parameter shape. The
// projection is computed on every call, never stored, so it cannot drift
// from the native parameters.
func (p Params) Wave() WaveParams {
	return WaveParams{
		NumChannels: p.ChannelCount,
		SampleWidth: p.SampleBytes,
		FrameRate:   p.SampleRate,
		NumFrames:   p.SampleCount,
		CompType:    "NONE",
		CompName:    "not compressed",
	}
}

// validate checks the cross-field constraints a usable parameter set must
// satisfy. Unset optional values are skipped.
func (p Params) validate() error {
	if p.ChannelCount < 1 {
		return fmt.Errorf("%w: channel_count %d", ErrInvalidParameter, p.ChannelCount)
	}
	if p.SampleBytes != 1 && p.SampleBytes != 2 && p.SampleBytes != 4 {
		return fmt.Errorf("%w: sample_n_bytes %d", ErrInvalidParameter, p.SampleBytes)
	}
	if p.SampleCount < 0 {
		return fmt.Errorf("%w: sample_count %d", ErrInvalidParameter, p.SampleCount)
	}
	coding := p.Coding
	if coding == "" {
		coding = CodingPCM
	}
	if (coding == CodingPCM || coding == "ulaw") && p.SampleRate < 1 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidParameter, p.SampleRate)
	}
	if p.ByteFormat != "" && !pcm.ValidFormat(p.ByteFormat, p.SampleBytes) {
		return fmt.Errorf("%w: sample_byte_format %q", ErrInvalidParameter, p.ByteFormat)
	}

	bits := p.SigBits
	if bits == 0 {
		bits = 8 * p.SampleBytes
	}
	if bits < 1 || bits > 8*p.SampleBytes {
		return fmt.Errorf("%w: sample_sig_bits %d", ErrInvalidParameter, p.SigBits)
	}
	lo := -(1 << (bits - 1))
	hi := 1<<(bits-1) - 1
	if p.SampleMin < lo || p.SampleMin > hi {
		return fmt.Errorf("%w: sample_min %d outside %d..%d", ErrInvalidParameter, p.SampleMin, lo, hi)
	}
	if p.SampleMax < lo || p.SampleMax > hi {
		return fmt.Errorf("%w: sample_max %d outside %d..%d", ErrInvalidParameter, p.SampleMax, lo, hi)
	}
	return nil
}

// paramsFromFields projects a parsed field set onto Params, filling the
// byte format, significant bits and coding defaults when absent.
func paramsFromFields(f *header.Fields) Params {
	var p Params
	p.DatabaseID, _ = f.String(FieldDatabaseID)
	p.DatabaseVersion, _ = f.String(FieldDatabaseVersion)
	p.UtteranceID, _ = f.String(FieldUtteranceID)
	p.ByteFormat, _ = f.String(FieldSampleByteFormat)
	p.Coding, _ = f.String(FieldSampleCoding)

	intField := func(name string) int {
		v, _ := f.Int(name)
		return int(v)
	}
	p.ChannelCount = intField(FieldChannelCount)
	p.SampleCount = intField(FieldSampleCount)
	p.SampleRate = intField(FieldSampleRate)
	p.SampleMin = intField(FieldSampleMin)
	p.SampleMax = intField(FieldSampleMax)
	p.SampleBytes = intField(FieldSampleNBytes)
	p.SigBits = intField(FieldSampleSigBits)

	if p.ByteFormat == "" {
		p.ByteFormat = pcm.DefaultFormat(p.SampleBytes)
	}
	if p.SigBits == 0 {
		p.SigBits = 8 * p.SampleBytes
	}
	if p.Coding == "" {
		p.Coding = CodingPCM
	}
	return p
}

// applyParams merges p into a pending header field set, defaulting the
// byte format and significant bits from the sample width. Optional string
// fields and the min/max pair are written only when set.
func applyParams(f *header.Fields, p Params) {
	setStr := func(name, v string) {
		if v != "" {
			f.SetString(name, v)
		}
	}
	setStr(FieldDatabaseID, p.DatabaseID)
	setStr(FieldDatabaseVersion, p.DatabaseVersion)
	setStr(FieldUtteranceID, p.UtteranceID)

	f.SetInt(FieldChannelCount, int64(p.ChannelCount))
	if p.SampleCount > 0 {
		f.SetInt(FieldSampleCount, int64(p.SampleCount))
	}
	if p.SampleRate > 0 {
		f.SetInt(FieldSampleRate, int64(p.SampleRate))
	}
	if p.SampleMin != 0 || p.SampleMax != 0 {
		f.SetInt(FieldSampleMin, int64(p.SampleMin))
		f.SetInt(FieldSampleMax, int64(p.SampleMax))
	}
	f.SetInt(FieldSampleNBytes, int64(p.SampleBytes))

	format := p.ByteFormat
	if format == "" {
		format = pcm.DefaultFormat(p.SampleBytes)
	}
	f.SetString(FieldSampleByteFormat, format)

	bits := p.SigBits
	if bits == 0 {
		bits = 8 * p.SampleBytes
	}
	f.SetInt(FieldSampleSigBits, int64(bits))

	setStr(FieldSampleCoding, p.Coding)
}
