// SPDX-License-Identifier: EPL-2.0

package sphere

import goaudio "github.com/go-audio/audio"

// WaveReader projects a read session onto the accessor shape of
// conventional PCM waveform containers. It holds no state of its own:
// every accessor is computed from the underlying Reader on demand, and
// closing either object closes both.
type WaveReader struct {
	r *Reader
}

// OpenWave opens the SPHERE file at path and returns its
// conventional-waveform view.
func OpenWave(path string) (*WaveReader, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	return r.Wave(), nil
}

// NumChannels returns the channel count.
func (w *WaveReader) NumChannels() int { return w.r.params.ChannelCount }

// SampleWidth returns the byte width of one sample.
func (w *WaveReader) SampleWidth() int { return w.r.params.SampleBytes }

// FrameRate returns the sample rate in Hz.
func (w *WaveReader) FrameRate() int { return w.r.params.SampleRate }

// NumFrames returns the declared sample_count of the underlying session.
func (w *WaveReader) NumFrames() int { return w.r.params.SampleCount }

// Params returns the waveform-shaped parameter set.
func (w *WaveReader) Params() (WaveParams, error) {
	p, err := w.r.Params()
	if err != nil {
		return WaveParams{}, err
	}
	return p.Wave(), nil
}

// SphereParams returns the native parameter set of the underlying
// session.
func (w *WaveReader) SphereParams() (Params, error) { return w.r.Params() }

// ReadFrames delegates to the underlying session.
func (w *WaveReader) ReadFrames(n int) ([]byte, error) { return w.r.ReadFrames(n) }

// ReadPCM delegates to the underlying session.
func (w *WaveReader) ReadPCM(n int) (*goaudio.IntBuffer, error) { return w.r.ReadPCM(n) }

// Tell delegates to the underlying session.
func (w *WaveReader) Tell() int { return w.r.Tell() }

// Seek delegates to the underlying session.
func (w *WaveReader) Seek(frame int) error { return w.r.Seek(frame) }

// Rewind delegates to the underlying session.
func (w *WaveReader) Rewind() error { return w.r.Rewind() }

// Close closes the underlying session.
func (w *WaveReader) Close() error { return w.r.Close() }

// WaveWriter is the write-mode counterpart of WaveReader: a stateless
// waveform-shaped view over a Writer. Parameter changes made through the
// Writer show up here immediately.
type WaveWriter struct {
	w *Writer
}

// NumChannels returns the pending channel count.
func (w *WaveWriter) NumChannels() int { return paramsFromFields(w.w.fields).ChannelCount }

// SampleWidth returns the pending sample byte width.
func (w *WaveWriter) SampleWidth() int { return paramsFromFields(w.w.fields).SampleBytes }

// FrameRate returns the pending sample rate in Hz.
func (w *WaveWriter) FrameRate() int { return paramsFromFields(w.w.fields).SampleRate }

// NumFrames returns the frames written so far.
func (w *WaveWriter) NumFrames() int { return w.w.Tell() }

// Params returns the pending waveform-shaped parameter set.
func (w *WaveWriter) Params() (WaveParams, error) {
	p, err := w.w.Params()
	if err != nil {
		return WaveParams{}, err
	}
	wp := p.Wave()
	wp.NumFrames = w.w.Tell()
	return wp, nil
}

// WriteFrames delegates to the underlying session.
func (w *WaveWriter) WriteFrames(data []byte) error { return w.w.WriteFrames(data) }

// WritePCM delegates to the underlying session.
func (w *WaveWriter) WritePCM(buf *goaudio.IntBuffer) error { return w.w.WritePCM(buf) }

// Tell delegates to the underlying session.
func (w *WaveWriter) Tell() int { return w.w.Tell() }

// Close closes the underlying session.
func (w *WaveWriter) Close() error { return w.w.Close() }
