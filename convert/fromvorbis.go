// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sphere"
)

// floatStream is the surface of oggvorbis.Reader this package needs,
// split out so tests can feed a synthetic stream.
type floatStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// FromVorbis decodes an Ogg Vorbis stream and writes it out as a SPHERE
// file of 16-bit PCM.
func FromVorbis(r io.Reader, w io.Writer) error {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}
	return fromFloatStream(dec, w)
}

// fromFloatStream converts normalized float32 samples to 16-bit PCM and
// spools them into a SPHERE file, carrying partial frames across reads.
func fromFloatStream(dec floatStream, w io.Writer) error {
	channels := dec.Channels()
	sw := sphere.NewWriter(w)
	err := sw.SetParams(sphere.Params{
		ChannelCount: channels,
		SampleBytes:  2,
		SampleRate:   dec.SampleRate(),
	})
	if err != nil {
		return err
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: dec.SampleRate()}
	fbuf := make([]float32, chunkFrames*channels)
	ints := make([]int, len(fbuf))
	rem := 0
	for {
		n, err := dec.Read(fbuf[rem:])
		total := rem + n
		whole := total - total%channels
		for i := 0; i < whole; i++ {
			x := fbuf[i]
			if x > 1 {
				x = 1
			} else if x < -1 {
				x = -1
			}
			ints[i] = int(int16(x * 32767.0))
		}
		if whole > 0 {
			werr := sw.WritePCM(&goaudio.IntBuffer{Data: ints[:whole], Format: format})
			if werr != nil {
				return werr
			}
		}
		rem = copy(fbuf, fbuf[whole:total])

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding stream: %w", err)
		}
	}

	return sw.Close()
}
