// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sphere"
	"github.com/ik5/sphere/pcm"
)

// pcmStream is the surface of go-mp3's decoder this package needs,
// split out so tests can feed a synthetic stream.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// mp3Channels is fixed: go-mp3 always emits stereo.
const mp3Channels = 2

// FromMP3 decodes an MP3 stream and writes it out as a SPHERE file of
// 16-bit little-endian PCM.
func FromMP3(r io.Reader, w io.Writer) error {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotMP3, err)
	}
	return fromPCMStream(dec, mp3Channels, w)
}

// fromPCMStream spools a 16-bit little-endian PCM byte stream into a
// SPHERE file, carrying partial frames across reads.
func fromPCMStream(dec pcmStream, channels int, w io.Writer) error {
	sw := sphere.NewWriter(w)
	err := sw.SetParams(sphere.Params{
		ChannelCount: channels,
		SampleBytes:  2,
		SampleRate:   dec.SampleRate(),
		ByteFormat:   pcm.LittleEndian,
	})
	if err != nil {
		return err
	}

	frameSize := 2 * channels
	buf := make([]byte, 8192)
	rem := 0
	for {
		n, err := dec.Read(buf[rem:])
		total := rem + n
		whole := total - total%frameSize
		if whole > 0 {
			if werr := sw.WriteFrames(buf[:whole]); werr != nil {
				return werr
			}
		}
		rem = copy(buf, buf[whole:total])

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding stream: %w", err)
		}
	}

	return sw.Close()
}
