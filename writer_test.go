// SPDX-License-Identifier: EPL-2.0

package sphere

import (
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sphere/header"
	"github.com/ik5/sphere/internal/spheretest"
)

func monoParams() Params {
	return Params{ChannelCount: 1, SampleBytes: 2, SampleRate: 8000}
}

func TestWriter_WriteAndReadBack(t *testing.T) {
	t.Parallel()

	samples := spheretest.Ramp16(20)
	var out bytes.Buffer

	w := NewWriter(&out)
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	if err := w.WriteFrames(spheretest.Int16LE(samples[:12])); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}
	if err := w.WriteFrames(spheretest.Int16LE(samples[12:])); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}
	if w.Tell() != 20 {
		t.Errorf("Tell() = %d, want 20", w.Tell())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	if want := header.DefaultSize + 40; out.Len() != want {
		t.Errorf("file size = %d, want %d", out.Len(), want)
	}

	r, err := Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer r.Close()

	p, _ := r.Params()
	if p.SampleCount != 20 {
		t.Errorf("SampleCount = %d, want 20", p.SampleCount)
	}
	if p.SampleRate != 8000 || p.ChannelCount != 1 || p.SampleBytes != 2 {
		t.Errorf("Params = %+v, want mono 16-bit at 8000 Hz", p)
	}

	got, err := r.ReadFrames(20)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v, want nil", err)
	}
	if !bytes.Equal(got, spheretest.Int16LE(samples)) {
		t.Error("read back bytes differ from written bytes")
	}
}

func TestWriter_SampleCountReflectsFramesWritten(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out)

	// A wrong declared count is overwritten with the real one at close.
	p := monoParams()
	p.SampleCount = 999
	if err := w.SetParams(p); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	if err := w.WriteFrames(spheretest.Int16LE(spheretest.Ramp16(3))); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	fields, err := header.Parse(out.Bytes()[:header.DefaultSize])
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if v, _ := fields.Int(FieldSampleCount); v != 3 {
		t.Errorf("sample_count = %d, want 3", v)
	}
}

func TestWriter_ParamsFrozenAfterWrite(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{})
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}

	// An empty write still starts the data section.
	if err := w.WriteFrames(nil); err != nil {
		t.Fatalf("WriteFrames(nil) error = %v, want nil", err)
	}

	if err := w.SetParams(monoParams()); !errors.Is(err, ErrParamsFrozen) {
		t.Errorf("SetParams() after write error = %v, want ErrParamsFrozen", err)
	}
	if err := w.SetField(header.IntField("extra", 1)); !errors.Is(err, ErrParamsFrozen) {
		t.Errorf("SetField() after write error = %v, want ErrParamsFrozen", err)
	}
}

func TestWriter_MissingParams(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{})
	if err := w.WriteFrames([]byte{0, 0}); !errors.Is(err, ErrMissingParams) {
		t.Errorf("WriteFrames() error = %v, want ErrMissingParams", err)
	}

	if err := w.Close(); !errors.Is(err, ErrMissingParams) {
		t.Errorf("Close() error = %v, want ErrMissingParams", err)
	}
}

func TestWriter_MissingSampleRate(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{})
	if err := w.SetField(header.IntField(FieldChannelCount, 1)); err != nil {
		t.Fatalf("SetField() error = %v, want nil", err)
	}
	if err := w.SetField(header.IntField(FieldSampleNBytes, 2)); err != nil {
		t.Fatalf("SetField() error = %v, want nil", err)
	}

	// Default coding is pcm, which requires a sample rate.
	if err := w.WriteFrames([]byte{0, 0}); !errors.Is(err, ErrMissingParams) {
		t.Errorf("WriteFrames() error = %v, want ErrMissingParams", err)
	}
}

func TestWriter_InvalidParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params Params
	}{
		{"zero channels", Params{ChannelCount: 0, SampleBytes: 2, SampleRate: 8000}},
		{"bad width", Params{ChannelCount: 1, SampleBytes: 3, SampleRate: 8000}},
		{"bad sig bits", Params{ChannelCount: 1, SampleBytes: 2, SampleRate: 8000, SigBits: 20}},
		{"bad byte format", Params{ChannelCount: 1, SampleBytes: 2, SampleRate: 8000, ByteFormat: "20"}},
		{"min outside width", Params{ChannelCount: 1, SampleBytes: 1, SampleRate: 8000, SampleMin: -300}},
		{"max outside sig bits", Params{ChannelCount: 1, SampleBytes: 2, SampleRate: 8000, SigBits: 8, SampleMax: 200}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := NewWriter(&bytes.Buffer{})
			if err := w.SetParams(tc.params); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("SetParams() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestWriter_PartialFrame(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{})
	p := monoParams()
	p.ChannelCount = 2
	if err := w.SetParams(p); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}

	if err := w.WriteFrames(make([]byte, 6)); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("WriteFrames() error = %v, want ErrPartialFrame", err)
	}
}

func TestWriter_CustomFieldsSurvive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out)
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	if err := w.SetField(header.StringField("vendor_notes", "session 12, mic B")); err != nil {
		t.Fatalf("SetField() error = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	r, err := Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer r.Close()

	if v, ok := r.Fields().String("vendor_notes"); !ok || v != "session 12, mic B" {
		t.Errorf("vendor_notes = %q, %v, want preserved", v, ok)
	}
}

func TestWriter_WritePCMRoundTrip(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out)
	p := Params{ChannelCount: 2, SampleBytes: 2, SampleRate: 16000, ByteFormat: "10"}
	if err := w.SetParams(p); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}

	want := []int{100, -100, 2000, -2000, 32767, -32768}
	buf := &goaudio.IntBuffer{
		Data:   want,
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 16000},
	}
	if err := w.WritePCM(buf); err != nil {
		t.Fatalf("WritePCM() error = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	r, err := Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer r.Close()

	got, err := r.ReadPCM(3)
	if err != nil {
		t.Fatalf("ReadPCM() error = %v, want nil", err)
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, got.Data[i], want[i])
		}
	}
}

func TestWriter_CloseIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out)
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	if err := w.WriteFrames(spheretest.Int16LE(spheretest.Ramp16(2))); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}
	size := out.Len()

	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if out.Len() != size {
		t.Error("second Close() wrote additional bytes")
	}

	if err := w.WriteFrames([]byte{0, 0}); !errors.Is(err, ErrClosed) {
		t.Errorf("WriteFrames() after close error = %v, want ErrClosed", err)
	}
	if err := w.SetParams(monoParams()); !errors.Is(err, ErrClosed) {
		t.Errorf("SetParams() after close error = %v, want ErrClosed", err)
	}
}

func TestWriter_HeaderOverflowCommitsNothing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := NewWriter(&out)
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	for i := 0; i < 30; i++ {
		name := "vendor_" + strings.Repeat("x", 20) + strconv.Itoa(i)
		if err := w.SetField(header.StringField(name, strings.Repeat("y", 40))); err != nil {
			t.Fatalf("SetField() error = %v, want nil", err)
		}
	}
	if err := w.WriteFrames(spheretest.Int16LE(spheretest.Ramp16(4))); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}

	if err := w.Close(); !errors.Is(err, header.ErrHeaderOverflow) {
		t.Fatalf("Close() error = %v, want header.ErrHeaderOverflow", err)
	}
	if out.Len() != 0 {
		t.Errorf("stream holds %d bytes after failed close, want 0", out.Len())
	}
}

func TestCreate_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.sph")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if err := w.SetParams(monoParams()); err != nil {
		t.Fatalf("SetParams() error = %v, want nil", err)
	}
	samples := spheretest.Ramp16(5)
	if err := w.WriteFrames(spheretest.Int16LE(samples)); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer r.Close()

	got, err := r.ReadFrames(5)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v, want nil", err)
	}
	if !bytes.Equal(got, spheretest.Int16LE(samples)) {
		t.Error("file round trip lost sample data")
	}
}
