// SPDX-License-Identifier: EPL-2.0

// Package sphere reads and writes NIST SPHERE audio files.
//
// SPHERE (SPeech HEader REsources) is the container used by many speech
// corpora: a fixed-size textual header block followed by raw interleaved
// PCM sample data. This package decodes the header into typed parameters,
// streams frames in and out, and round-trips unknown header fields so
// vendor extensions survive a rewrite.
//
// # Reading
//
// Open a file and pull frames off the session:
//
//	r, err := sphere.Open("speech.sph")
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	params, _ := r.Params()
//	fmt.Println(params.SampleRate, params.ChannelCount)
//
//	raw, _ := r.ReadFrames(4096) // raw bytes, declared byte order
//	buf, _ := r.ReadPCM(4096)    // decoded *audio.IntBuffer
//
// Reads are stateful and resume at the cursor; Seek, Rewind and Tell
// position it by frame index. Asking for more frames than remain returns
// the remainder, not an error. Streams that are not files work through
// Decoder:
//
//	r, err := sphere.Decoder{}.Decode(anyReader)
//
// A header whose sample_count overshoots the actual data is clamped to
// what is present; Decoder{Strict: true} turns that drift into an error.
//
// # Writing
//
// Set parameters, write frames, close:
//
//	w, err := sphere.Create("out.sph")
//	if err != nil {
//	    // Handle error
//	}
//	w.SetParams(sphere.Params{
//	    ChannelCount: 1,
//	    SampleBytes:  2,
//	    SampleRate:   16000,
//	})
//	w.WriteFrames(data)
//	err = w.Close()
//
// Sample data is spooled until Close, which writes the header with the
// true frame count followed by the data in one pass. Parameters freeze at
// the first write; later SetParams calls report ErrParamsFrozen.
//
// # Wave-like view
//
// Reader.Wave and Writer.Wave return views shaped like conventional
// waveform container APIs (NumChannels, SampleWidth, FrameRate,
// NumFrames), computed on demand from the same session:
//
//	wv := r.Wave()
//	fmt.Println(wv.FrameRate(), wv.NumFrames())
//
// # Subpackages
//
// The header block codec lives in the header subpackage, the frame-level
// sample codec in pcm, and conversions to and from other containers (WAV,
// AIFF, MP3, Ogg Vorbis) in convert.
package sphere
