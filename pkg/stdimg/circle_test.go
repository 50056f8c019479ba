package stdimg

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestMaskCircleWhiteSquare(t *testing.T) {
	src := makeSolidNRGBA(10, 10, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c := DefaultCircle(10, 10, nil, nil)
	if c.Center != (Point{5, 5}) || c.Radius != 5 {
		t.Fatalf("unexpected default circle %+v", c)
	}
	out, err := MaskCircle(src, c)
	if err != nil {
		t.Fatalf("MaskCircle failed: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("expected 10x10 after crop, got %v", out.Bounds())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			i := out.PixOffset(x, y)
			if out.Pix[i] != 255 || out.Pix[i+1] != 255 || out.Pix[i+2] != 255 {
				t.Fatalf("rgb changed at (%d,%d)", x, y)
			}
			d := math.Hypot(float64(x)+0.5-5, float64(y)+0.5-5)
			a := out.Pix[i+3]
			if d > 5 && a != 0 {
				t.Fatalf("pixel (%d,%d) outside disc has alpha %d", x, y, a)
			}
			if d < 5 && a != 255 {
				t.Fatalf("pixel (%d,%d) inside disc has alpha %d", x, y, a)
			}
		}
	}
	if out.Pix[out.PixOffset(0, 0)+3] != 0 || out.Pix[out.PixOffset(5, 5)+3] != 255 {
		t.Fatalf("unexpected alpha at corner or center")
	}
}

func TestCircleAlphaContainment(t *testing.T) {
	c := Circle{Center: Point{X: 13.2, Y: 7.9}, Radius: 6.4}
	mask := CircleAlpha(30, 20, c)
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			d := math.Hypot(float64(x)+0.5-c.Center.X, float64(y)+0.5-c.Center.Y)
			a := mask.Pix[mask.PixOffset(x, y)]
			if d > c.Radius && a != 0 {
				t.Fatalf("(%d,%d) outside but alpha %d", x, y, a)
			}
			if d < c.Radius && a != 255 {
				t.Fatalf("(%d,%d) inside but alpha %d", x, y, a)
			}
		}
	}
}

func TestMaskCircleCircumscribesDisc(t *testing.T) {
	src := makeSolidNRGBA(40, 30, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	r := 6.0
	out, err := MaskCircle(src, DefaultCircle(40, 30, &Point{X: 20, Y: 15}, &r))
	if err != nil {
		t.Fatalf("MaskCircle failed: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 12, 12) {
		t.Fatalf("expected 12x12 bounding box, got %v", out.Bounds())
	}
	again, _ := TrimEdges(out, Transparent)
	if again.Bounds() != out.Bounds() {
		t.Fatalf("transparent edge remained after mask: %v", again.Bounds())
	}
}

func TestDefaultCircleOffsetCenter(t *testing.T) {
	// portrait: the shorter axis is x
	c := DefaultCircle(10, 20, &Point{X: 7, Y: 10}, nil)
	if c.Radius != 3 {
		t.Fatalf("expected radius 3, got %v", c.Radius)
	}
	// landscape: the shorter axis is y, so an x offset does not shrink the radius
	c = DefaultCircle(20, 10, &Point{X: 12, Y: 5}, nil)
	if c.Radius != 5 {
		t.Fatalf("expected radius 5, got %v", c.Radius)
	}
	c = DefaultCircle(21, 21, nil, nil)
	if c.Radius != 10 || c.Center != (Point{10.5, 10.5}) {
		t.Fatalf("unexpected odd-size default %+v", c)
	}
}

func TestMaskCircleErrors(t *testing.T) {
	src := makeSolidNRGBA(10, 10, color.NRGBA{R: 255, A: 255})
	if _, err := MaskCircle(src, Circle{Center: Point{-1, 5}, Radius: 3}); !errors.Is(err, ErrInvalidCircle) {
		t.Fatalf("expected ErrInvalidCircle for outside center, got %v", err)
	}
	if _, err := MaskCircle(src, Circle{Center: Point{5, 5}, Radius: -2}); !errors.Is(err, ErrInvalidCircle) {
		t.Fatalf("expected ErrInvalidCircle for negative radius, got %v", err)
	}
	if _, err := MaskCircle(src, Circle{Center: Point{5, 5}, Radius: 0}); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage for zero radius, got %v", err)
	}
	// default radius collapses when the center sits on the edge
	if _, err := MaskCircle(src, DefaultCircle(10, 10, &Point{0, 5}, nil)); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage for collapsed default radius, got %v", err)
	}
}
