package wavio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	samples := make([]float64, 800)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/40)
	}

	if err := WriteMono(path, samples, 16000); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, rate, err := ReadMono(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if rate != 16000 {
		t.Fatalf("sample rate %d, want 16000", rate)
	}
	if len(got) != len(samples) {
		t.Fatalf("len=%d, want %d", len(got), len(samples))
	}

	// 16-bit quantization error is below 1/32768.
	for i := range samples {
		if math.Abs(got[i]-samples[i]) > 1e-3 {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestClipping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hot.wav")

	if err := WriteMono(path, []float64{2, -2, 0}, 8000); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, _, err := ReadMono(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	for i, v := range got {
		if v > 1 || v < -1 {
			t.Fatalf("sample %d out of range after clipping: %v", i, v)
		}
	}
}

func TestRejectsStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		SourceBitDepth: 16,
		Data:           make([]int, 64),
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	_, _, err = ReadMono(path)
	if !errors.Is(err, ErrNotMono) {
		t.Fatalf("expected ErrNotMono, got %v", err)
	}
}

func TestRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := ReadMono(path); err == nil {
		t.Fatal("expected error for invalid file")
	}
}
