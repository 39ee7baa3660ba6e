// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"bytes"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/pcm"
)

// Writer is a write-mode SPHERE session. Sample data is spooled in memory
// and the file is emitted header-then-data in one pass at Close, once the
// true sample_count is known. Nothing reaches the underlying stream
// before that, so a failed finalize leaves no partial file behind.
type Writer struct {
	w      io.Writer
	file   *os.File // set when Create opened the handle
	fields *header.Fields
	data   bytes.Buffer

	frames  int
	started bool // first WriteFrames happened; parameters are frozen
	closed  bool
}

// NewWriter returns a write session targeting w. Parameters must be set
// before the first WriteFrames call.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, fields: header.NewFields()}
}

// Create creates the file at path and returns a write session that owns
// the handle and releases it on Close.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	w := NewWriter(f)
	w.file = f
	return w, nil
}

// SetParams merges p into the pending header. It is only valid before the
// first write; afterwards the parameters are frozen.
func (w *Writer) SetParams(p Params) error {
	if w.closed {
		return ErrClosed
	}
	if w.started {
		return ErrParamsFrozen
	}
	if err := p.validate(); err != nil {
		return err
	}
	applyParams(w.fields, p)
	return nil
}

// SetField sets a single header field, known or custom. Like SetParams it
// is rejected once data has been written.
func (w *Writer) SetField(fld header.Field) error {
	if w.closed {
		return ErrClosed
	}
	if w.started {
		return ErrParamsFrozen
	}
	w.fields.Set(fld)
	return nil
}

// Params returns the pending header parameters.
func (w *Writer) Params() (Params, error) {
	if w.closed {
		return Params{}, ErrClosed
	}
	return paramsFromFields(w.fields), nil
}

// Fields returns the pending header fields. The returned set must be
// treated as read-only; use SetField to change it.
func (w *Writer) Fields() *header.Fields { return w.fields }

// Tell returns the number of frames written so far.
func (w *Writer) Tell() int { return w.frames }

// requireParams checks that the pending header can describe sample data.
func (w *Writer) requireParams() (Params, error) {
	if _, ok := w.fields.Int(FieldChannelCount); !ok {
		return Params{}, fmt.Errorf("%w: %s", ErrMissingParams, FieldChannelCount)
	}
	if _, ok := w.fields.Int(FieldSampleNBytes); !ok {
		return Params{}, fmt.Errorf("%w: %s", ErrMissingParams, FieldSampleNBytes)
	}
	p := paramsFromFields(w.fields)
	if p.SampleRate == 0 && (p.Coding == CodingPCM || p.Coding == "ulaw") {
		return Params{}, fmt.Errorf("%w: %s", ErrMissingParams, FieldSampleRate)
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// WriteFrames appends raw sample bytes, already laid out in the declared
// width, byte format and channel interleaving. The length must cover
// whole frames. The first call, even an empty one, freezes the
// parameters.
func (w *Writer) WriteFrames(data []byte) error {
	if w.closed {
		return ErrClosed
	}
	p, err := w.requireParams()
	if err != nil {
		return err
	}
	if len(data)%p.FrameSize() != 0 {
		return fmt.Errorf("%w: %d bytes, frame size %d", ErrPartialFrame, len(data), p.FrameSize())
	}

	w.started = true
	w.data.Write(data)
	w.frames += len(data) / p.FrameSize()
	return nil
}

// WritePCM encodes a go-audio buffer of interleaved integer samples per
// the pending parameters and appends it.
func (w *Writer) WritePCM(buf *goaudio.IntBuffer) error {
	if w.closed {
		return ErrClosed
	}
	p, err := w.requireParams()
	if err != nil {
		return err
	}
	raw, err := pcm.Encode(buf.Data, p.SampleBytes, p.ByteFormat, p.ChannelCount)
	if err != nil {
		return err
	}
	return w.WriteFrames(raw)
}

// Wave returns the conventional-waveform view of this session.
func (w *Writer) Wave() *WaveWriter { return &WaveWriter{w: w} }

// Close finalizes the header with the actual frame count, writes header
// then sample data to the underlying stream and releases the session.
// A second Close is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	err := w.finalize()
	w.closed = true
	if w.file != nil {
		if cerr := w.file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
	}
	return err
}

func (w *Writer) finalize() error {
	p, err := w.requireParams()
	if err != nil {
		return err
	}

	w.fields.SetInt(FieldSampleCount, int64(w.frames))
	if _, ok := w.fields.String(FieldSampleByteFormat); !ok {
		w.fields.SetString(FieldSampleByteFormat, pcm.DefaultFormat(p.SampleBytes))
	}
	if _, ok := w.fields.Int(FieldSampleSigBits); !ok {
		w.fields.SetInt(FieldSampleSigBits, int64(8*p.SampleBytes))
	}

	block, err := header.Serialize(w.fields)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(block); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.data.WriteTo(w.w); err != nil {
		return fmt.Errorf("writing sample data: %w", err)
	}
	return nil
}
