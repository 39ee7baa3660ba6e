// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sphere"
)

// FromWAV reads a PCM WAV stream and writes it out as a SPHERE file.
// Metadata beyond the format parameters is not carried over.
func FromWAV(r io.ReadSeeker, w io.Writer) error {
	dec := wav.NewDecoder(r)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return ErrNotWAV
	}

	width := int(dec.BitDepth) / 8
	if width != 1 && width != 2 && width != 4 {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, dec.BitDepth)
	}

	sw := sphere.NewWriter(w)
	err := sw.SetParams(sphere.Params{
		ChannelCount: int(dec.NumChans),
		SampleBytes:  width,
		SampleRate:   int(dec.SampleRate),
	})
	if err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, chunkFrames*int(dec.NumChans)),
		Format: dec.Format(),
	}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return fmt.Errorf("decoding wav: %w", err)
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
