// SPDX-License-Identifier: EPL-2.0

// Package convert moves audio between SPHERE and other containers.
//
// SPHERE corpora often need to interoperate with tools that only speak
// WAV, and corpus ingestion pipelines start from whatever format the
// recordings arrived in. This package covers both directions:
//
//   - ToWAV / ToRaw export an open sphere.Reader as a PCM WAV file or as
//     headerless PCM.
//   - FromWAV, FromAIFF, FromMP3 and FromVorbis decode the source stream
//     and write a SPHERE file with matching parameters.
//
// Converting a SPHERE file to WAV:
//
//	r, err := sphere.Open("speech.sph")
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	out, _ := os.Create("speech.wav")
//	defer out.Close()
//	err = convert.ToWAV(r, out)
//
// And back:
//
//	in, _ := os.Open("speech.wav")
//	defer in.Close()
//	out, _ := os.Create("speech.sph")
//	defer out.Close()
//	err := convert.FromWAV(in, out)
//
// All conversions stream in fixed-size frame batches, so memory use does
// not grow with the input. Lossy sources (MP3, Vorbis) come out as 16-bit
// PCM; PCM sources keep their width, with bit depths outside SPHERE's
// 1/2/4-byte widths reported as ErrUnsupportedDepth.
package convert
