// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere"
)

// FromAIFF reads a PCM AIFF stream and writes it out as a SPHERE file.
func FromAIFF(r io.ReadSeeker, w io.Writer) error {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return ErrNotAIFF
	}
	dec.ReadInfo()

	width := int(dec.BitDepth) / 8
	if width != 1 && width != 2 && width != 4 {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return ErrNotAIFF
	}

	sw := sphere.NewWriter(w)
	err := sw.SetParams(sphere.Params{
		ChannelCount: format.NumChannels,
		SampleBytes:  width,
		SampleRate:   format.SampleRate,
	})
	if err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, chunkFrames*format.NumChannels),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return fmt.Errorf("decoding aiff: %w", err)
		}
		if n == 0 {
			break
		}
		full := buf.Data
		buf.Data = buf.Data[:n]
		werr := sw.WritePCM(buf)
		buf.Data = full
		if werr != nil {
			return werr
		}
	}

	return sw.Close()
}
