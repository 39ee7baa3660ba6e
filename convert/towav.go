// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/sphere"
)

// chunkFrames is the frame batch size conversions stream in.
const chunkFrames = 4096

// wavFormatPCM is the RIFF audio format tag for uncompressed PCM.
const wavFormatPCM = 1

// ToWAV writes the remaining frames of r as a PCM WAV file. The WAV
// encoder patches its chunk sizes at the end, so w must be seekable.
func ToWAV(r *sphere.Reader, w io.WriteSeeker) error {
	p, err := r.Params()
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, p.SampleRate, 8*p.SampleBytes, p.ChannelCount, wavFormatPCM)
	for {
		buf, err := r.ReadPCM(chunkFrames)
		if err != nil {
			return err
		}
		if len(buf.Data) == 0 {
			break
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// ToRaw writes the remaining frames of r as headerless PCM, byte order
// and interleaving unchanged.
func ToRaw(r *sphere.Reader, w io.Writer) error {
	for {
		raw, err := r.ReadFrames(chunkFrames)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return nil
		}
		if _, err := w.Write(raw); err != nil {
			return fmt.Errorf("writing raw pcm: %w", err)
		}
	}
}
