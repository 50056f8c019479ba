package stdimg

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestGradientMask(t *testing.T) {
	m := GradientMask(4)
	want := []float64{1, 2.0 / 3.0, 1.0 / 3.0, 0}
	for i := range want {
		if math.Abs(m[i]-want[i]) > 1e-12 {
			t.Fatalf("mask[%d] = %v, want %v", i, m[i], want[i])
		}
	}
	if m := GradientMask(1); len(m) != 1 || m[0] != 1 {
		t.Fatalf("unexpected single-column mask %v", m)
	}
	if GradientMask(0) != nil {
		t.Fatalf("expected nil mask for zero width")
	}
}

func TestAddShadowRow(t *testing.T) {
	src := makeSolidNRGBA(4, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	out, _ := AddShadow(src)
	want := []int{100, 67, 33, 0}
	for x, w := range want {
		i := out.PixOffset(x, 0)
		for c := 0; c < 3; c++ {
			if d := int(out.Pix[i+c]) - w; d < -1 || d > 1 {
				t.Fatalf("pixel %d channel %d = %d, want ~%d", x, c, out.Pix[i+c], w)
			}
		}
		if out.Pix[i+3] != 255 {
			t.Fatalf("alpha changed at %d", x)
		}
	}
}

func TestAddShadowRatioUniform(t *testing.T) {
	src := makeSolidNRGBA(33, 5, color.NRGBA{R: 180, G: 90, B: 30, A: 255})
	_, ratio := AddShadow(src)
	if math.Abs(ratio-0.5) > 1e-9 {
		t.Fatalf("expected ratio 0.5 for uniform image, got %v", ratio)
	}
	_, ratio = AddShadow(makeNoiseNRGBA(17, 9, 11))
	if ratio < 0 || ratio > 1 {
		t.Fatalf("ratio out of range: %v", ratio)
	}
	_, ratio = AddShadow(makeSolidNRGBA(5, 5, color.NRGBA{A: 255}))
	if ratio != 1 {
		t.Fatalf("expected ratio 1 for black image, got %v", ratio)
	}
}

func TestAddShadowMonotonicValue(t *testing.T) {
	src := makeSolidNRGBA(50, 3, color.NRGBA{R: 180, G: 90, B: 30, A: 255})
	out, _ := AddShadow(src)
	saveTestOutput(t, "shadow_test_out.png", out)
	for y := 0; y < 3; y++ {
		prev := 256
		for x := 0; x < 50; x++ {
			i := out.PixOffset(x, y)
			v := int(max(out.Pix[i], out.Pix[i+1], out.Pix[i+2]))
			if v > prev {
				t.Fatalf("value increased at (%d,%d): %d > %d", x, y, v, prev)
			}
			prev = v
		}
	}
}

func TestScaleValueKeepsHueSaturation(t *testing.T) {
	p := SplitHSV(makeNoiseNRGBA(21, 6, 5))
	h0 := append([]float64(nil), p.H...)
	s0 := append([]float64(nil), p.S...)
	a0 := append([]uint8(nil), p.A...)
	p.ScaleValue(GradientMask(p.Width))
	for i := range h0 {
		if math.Float64bits(h0[i]) != math.Float64bits(p.H[i]) || math.Float64bits(s0[i]) != math.Float64bits(p.S[i]) {
			t.Fatalf("hue or saturation changed at %d", i)
		}
		if a0[i] != p.A[i] {
			t.Fatalf("alpha changed at %d", i)
		}
	}
}

func TestAddShadowKeepsAlpha(t *testing.T) {
	src := makeNoiseNRGBA(8, 8, 2)
	for i := 3; i < len(src.Pix); i += 8 {
		src.Pix[i] = 0
	}
	out, _ := AddShadow(src)
	for i := 3; i < len(src.Pix); i += 4 {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("alpha changed at byte %d", i)
		}
	}
}

func TestSplitHSVRoundTrip(t *testing.T) {
	src := makeNoiseNRGBA(13, 7, 9)
	out := SplitHSV(src).ToNRGBA()
	if out.Bounds() != image.Rect(0, 0, 13, 7) || string(out.Pix) != string(src.Pix) {
		t.Fatalf("HSV round trip is not lossless")
	}
}
