package signal

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	g := NewGenerator(16000)

	out, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 64 {
		t.Fatalf("len=%d, want 64", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("out[0]=%v, want 0", out[0])
	}

	// 1 kHz at 16 kHz has a 16-sample period; a quarter period hits the peak.
	if math.Abs(out[4]-1) > 1e-12 {
		t.Fatalf("out[4]=%v, want 1", out[4])
	}

	if _, err := g.Sine(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(48000, WithSeed(7)).WhiteNoise(0.5, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, _ := NewGenerator(48000, WithSeed(7)).WhiteNoise(0.5, 256)
	c, _ := NewGenerator(48000, WithSeed(8)).WhiteNoise(0.5, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
		if a[i] < -0.5 || a[i] > 0.5 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}
	}

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestToneBurst(t *testing.T) {
	g := NewGenerator(16000)

	out, err := g.ToneBurst(1000, 1, 128, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 64; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d before onset nonzero: %v", i, out[i])
		}
	}

	energy := 0.0
	for _, v := range out[64:] {
		energy += v * v
	}
	if energy == 0 {
		t.Fatal("tone section is silent")
	}

	if _, err := g.ToneBurst(1000, 1, 128, 129); err == nil {
		t.Fatal("expected error for onset past end")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.5, -2, 1}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0.25, -1, 0.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}

	silent, err := Normalize([]float64{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range silent {
		if v != 0 {
			t.Fatalf("silent input scaled at %d: %v", i, v)
		}
	}
}
