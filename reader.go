// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/pcm"
)

// Decoder opens SPHERE streams for reading.
type Decoder struct {
	// Strict makes a declared sample_count that exceeds the sample data
	// actually present an open error. The default clamps the readable
	// frame count to what the stream holds, since header/data drift is
	// common in the format's corpus.
	Strict bool
}

// Reader is a read-mode SPHERE session. It owns the stream cursor; frame
// reads are stateful and resume where the previous one stopped.
type Reader struct {
	rs     io.ReadSeeker
	file   *os.File // set when Open created the handle
	fields *header.Fields
	params Params

	offset     int64 // first byte of the sample region
	frames     int   // readable frame count after any clamping
	pos        int   // next frame index
	seekNeeded bool
	closed     bool
}

// Decode parses the header of r and returns a session positioned at frame
// zero. When r is not an io.ReadSeeker the whole stream is buffered in
// memory first.
func (d Decoder) Decode(r io.Reader) (*Reader, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading sphere stream: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	fields, size, err := header.Read(rs)
	if err != nil {
		return nil, err
	}

	if _, ok := fields.Int(FieldChannelCount); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParams, FieldChannelCount)
	}
	if _, ok := fields.Int(FieldSampleNBytes); !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParams, FieldSampleNBytes)
	}
	params := paramsFromFields(fields)
	if err := params.validate(); err != nil {
		return nil, err
	}

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("sizing sample region: %w", err)
	}
	avail := int((end - int64(size)) / int64(params.FrameSize()))
	if avail < 0 {
		avail = 0
	}

	frames := params.SampleCount
	if _, declared := fields.Int(FieldSampleCount); !declared {
		frames = avail
	} else if frames > avail {
		if d.Strict {
			return nil, fmt.Errorf("%w: declared %d frames, have %d", ErrShortData, frames, avail)
		}
		frames = avail
	}

	if _, err := rs.Seek(int64(size), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to sample region: %w", err)
	}

	return &Reader{
		rs:     rs,
		fields: fields,
		params: params,
		offset: int64(size),
		frames: frames,
	}, nil
}

// Open opens the SPHERE file at path for reading. The returned session
// owns the file handle and releases it on Close.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	r, err := Decoder{}.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// Params returns the decoded header parameters.
func (r *Reader) Params() (Params, error) {
	if r.closed {
		return Params{}, ErrClosed
	}
	return r.params, nil
}

// Fields returns the parsed header fields, unknown entries included.
// The returned set must be treated as read-only.
func (r *Reader) Fields() *header.Fields { return r.fields }

// NumFrames reports how many frames the session will actually deliver,
// after any clamp of a declared sample_count that overshoots the data.
func (r *Reader) NumFrames() int { return r.frames }

// Tell returns the index of the next frame to be read.
func (r *Reader) Tell() int { return r.pos }

// Seek positions the cursor at the given frame index.
func (r *Reader) Seek(frame int) error {
	if r.closed {
		return ErrClosed
	}
	if frame < 0 || frame > r.frames {
		return fmt.Errorf("%w: %d", ErrOutOfRange, frame)
	}
	r.pos = frame
	r.seekNeeded = true
	return nil
}

// Rewind positions the cursor back at frame zero.
func (r *Reader) Rewind() error { return r.Seek(0) }

// ReadFrames returns the raw bytes of up to n frames, advancing the
// cursor. Past the last frame it returns whatever remains, so a short or
// empty result is normal end-of-stream behavior, not an error.
func (r *Reader) ReadFrames(n int) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrOutOfRange, n)
	}

	frameSize := r.params.FrameSize()
	if r.seekNeeded {
		if _, err := r.rs.Seek(r.offset+int64(r.pos)*int64(frameSize), io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking to frame %d: %w", r.pos, err)
		}
		r.seekNeeded = false
	}

	if remaining := r.frames - r.pos; n > remaining {
		n = remaining
	}
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n*frameSize)
	m, err := io.ReadFull(r.rs, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w", err)
	}

	// Whole frames only; a trailing partial frame is dropped.
	got := m / frameSize
	r.pos += got
	return buf[:got*frameSize], nil
}

// ReadPCM reads up to n frames and decodes them into a go-audio buffer of
// interleaved integer samples. The buffer's format carries the session's
// channel count and sample rate.
func (r *Reader) ReadPCM(n int) (*goaudio.IntBuffer, error) {
	raw, err := r.ReadFrames(n)
	if err != nil {
		return nil, err
	}

	frames := len(raw) / r.params.FrameSize()
	data, err := pcm.Decode(raw, r.params.SampleBytes, r.params.ByteFormat, r.params.ChannelCount, frames)
	if err != nil {
		return nil, err
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: r.params.ChannelCount,
			SampleRate:  r.params.SampleRate,
		},
		SourceBitDepth: r.params.SigBits,
		Data:           data,
	}, nil
}

// Wave returns the conventional-waveform view of this session. The view
// holds no state of its own and becomes invalid once the session closes.
func (r *Reader) Wave() *WaveReader { return &WaveReader{r: r} }

// Close releases the session. A second Close is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// readSeeker implements io.ReadSeeker over in-memory data, for callers
// that hand Decode a plain io.Reader.
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}
	rs.offset = newOffset
	return newOffset, nil
}
