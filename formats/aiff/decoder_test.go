// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// mockPCM hands out fixed integer samples like aiff.Decoder does.
type mockPCM struct {
	samples []int
	offset  int
	err     error
}

func (m *mockPCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

// encodeAIFF writes samples with the go-audio encoder and returns the file bytes.
func encodeAIFF(t *testing.T, rate, channels, bits int, samples []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.aif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := aiff.NewEncoder(f, rate, bits, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           samples,
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoder Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 100}
	data := encodeAIFF(t, 22050, 2, 16, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("got %d Hz %d ch, want 22050 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	got := make([]float32, 16)
	n, _ := src.ReadSamples(got)
	if n != len(samples) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(samples))
	}

	want := []float32{0, 16384.0 / 32767, -0.5, 1, -1, 100.0 / 32767}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if n, err := src.ReadSamples(got); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, EOF)", n, err)
	}
}

type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := encodeAIFF(t, 8000, 1, 16, []int{1, 2, 3})

	src, err := Decoder{}.Decode(onlyReader{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	buf := make([]float32, 8)
	if n, _ := src.ReadSamples(buf); n != 3 {
		t.Errorf("ReadSamples() = %d, want 3", n)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not AIFF data")},
		{"riff", append([]byte("RIFF\x24\x00\x00\x00WAVE"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v, bits int
		want    float32
	}{
		{-128, 8, -1},
		{64, 8, 0.5},
		{32767, 16, 1},
		{-32768, 16, -1},
		{-8388608, 24, -1},
		{4194304, 24, 0.5},
		{math.MinInt32, 32, -1},
		{0, 32, 0},
	}

	for _, tt := range tests {
		if got := normalize(tt.v, tt.bits); got != tt.want {
			t.Errorf("normalize(%d, %d) = %v, want %v", tt.v, tt.bits, got, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockPCM{samples: []int{0, 64, -128, 127, 32}},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   8,
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if n != 3 || err != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (3, nil)", n, err)
	}
	if buf[1] != 0.5 || buf[2] != -1 {
		t.Errorf("samples = %v, want [0 0.5 -1]", buf)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("second ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("third ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockPCM{err: io.ErrUnexpectedEOF}, channels: 1, bitDepth: 16}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	for i, a := range all {
		if a.Error() == "" {
			t.Errorf("error %d has empty message", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 1<<16)
	for i := range samples {
		samples[i] = i%65536 - 32768
	}

	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := &source{dec: &mockPCM{samples: samples}, channels: 2, bitDepth: 16}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
