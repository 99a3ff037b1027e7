package depth

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func grayImage(w, h int, values []uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, values)
	return img
}

func TestFromImageNormalizes(t *testing.T) {
	// Max value 200 should normalize to 1.0, half of it to 0.5.
	img := grayImage(2, 1, []uint8{200, 100})
	m := FromImage(img)

	if m.W != 2 || m.H != 1 {
		t.Fatalf("expected 2x1 map, got %dx%d", m.W, m.H)
	}
	if m.At(0, 0) != 1.0 {
		t.Errorf("expected max sample to normalize to 1.0, got %f", m.At(0, 0))
	}
	got := m.At(1, 0)
	if got < 0.49 || got > 0.51 {
		t.Errorf("expected ~0.5, got %f", got)
	}
}

func TestFromImageAllBlack(t *testing.T) {
	img := grayImage(3, 3, make([]uint8, 9))
	m := FromImage(img)

	if !m.IsFlat() {
		t.Error("expected all-black map to report flat")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if m.At(x, y) != 0 {
				t.Errorf("expected zero depth at (%d,%d), got %f", x, y, m.At(x, y))
			}
		}
	}
}

func TestAtClamps(t *testing.T) {
	m, err := FromValues(2, 2, []float32{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	if m.At(-5, 0) != 0.1 {
		t.Errorf("expected left clamp to 0.1, got %f", m.At(-5, 0))
	}
	if m.At(10, 10) != 0.4 {
		t.Errorf("expected corner clamp to 0.4, got %f", m.At(10, 10))
	}
}

func TestFromValuesLengthMismatch(t *testing.T) {
	if _, err := FromValues(2, 2, []float32{0.1}); err == nil {
		t.Error("expected error for wrong value count, got nil")
	}
	if _, err := FromValues(0, 2, nil); err == nil {
		t.Error("expected error for zero dimension, got nil")
	}
}

func TestDecodePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}

	m, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if m.W != 4 || m.H != 4 {
		t.Errorf("expected 4x4 map, got %dx%d", m.W, m.H)
	}
	if m.At(2, 2) != 1.0 {
		t.Errorf("expected 1.0 for white pixel, got %f", m.At(2, 2))
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error decoding garbage, got nil")
	}
}

func TestSamplerNearest(t *testing.T) {
	m, err := FromValues(2, 2, []float32{0.0, 0.25, 0.5, 1.0})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	tests := []struct {
		u, v float64
		want float64
	}{
		{0, 0, 0.0},      // top-left
		{1, 0, 0.25},     // u=1 rounds to W then clamps to W-1
		{0, 1, 0.5},      // bottom-left
		{1, 1, 1.0},      // bottom-right
		{0.2, 0.2, 0.0},  // round(0.4) = 0
	}
	for _, tt := range tests {
		if got := SamplerNearest.Sample(m, tt.u, tt.v); got != tt.want {
			t.Errorf("nearest sample at (%v,%v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestSamplerBilinear(t *testing.T) {
	m, err := FromValues(2, 1, []float32{0.0, 1.0})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	got := SamplerBilinear.Sample(m, 0.5, 0)
	if got < 0.499 || got > 0.501 {
		t.Errorf("bilinear midpoint = %v, want 0.5", got)
	}
	if got := SamplerBilinear.Sample(m, 0, 0); got != 0.0 {
		t.Errorf("bilinear at left edge = %v, want 0", got)
	}
	if got := SamplerBilinear.Sample(m, 1, 0); got != 1.0 {
		t.Errorf("bilinear at right edge = %v, want 1", got)
	}
}

func TestParseSampler(t *testing.T) {
	tests := []struct {
		in      string
		want    Sampler
		wantErr bool
	}{
		{"nearest", SamplerNearest, false},
		{"bilinear", SamplerBilinear, false},
		{"", SamplerNearest, false},
		{"cubic", SamplerNearest, true},
	}
	for _, tt := range tests {
		got, err := ParseSampler(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSampler(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSampler(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResizeTo(t *testing.T) {
	m := Uniform(4, 8, 0.5)
	r := m.ResizeTo(2, 4)

	if r.W != 2 || r.H != 4 {
		t.Fatalf("expected 2x4 map, got %dx%d", r.W, r.H)
	}
	// Uniform input stays uniform under bilinear resampling.
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			got := r.At(x, y)
			if got < 0.49 || got > 0.51 {
				t.Errorf("expected ~0.5 at (%d,%d), got %f", x, y, got)
			}
		}
	}
}

func TestResizeToSameSize(t *testing.T) {
	m := Uniform(3, 3, 0.7)
	if r := m.ResizeTo(3, 3); r != m {
		t.Error("expected same-size resize to return the receiver")
	}
}
