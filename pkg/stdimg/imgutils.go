package stdimg

import (
	"errors"
	"image"
	"image/draw"
	"math"
)

var (
	// ErrEmptyImage is returned when a trim leaves no rows or columns.
	ErrEmptyImage = errors.New("stdimg: image is empty after trim")
	// ErrInvalidCircle is returned for a circle that cannot be placed on the image.
	ErrInvalidCircle = errors.New("stdimg: invalid circle")
)

// ToNRGBA converts any image.Image to a freshly allocated *image.NRGBA whose
// bounds start at (0,0). The source is never aliased.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

// CloneNRGBA returns a tightly packed copy of src with origin (0,0).
func CloneNRGBA(src *image.NRGBA) *image.NRGBA {
	if src == nil {
		return nil
	}
	return ToNRGBA(src)
}

// clampInt clamps v to [lo,hi]
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloatToUint8 ensures v in [0,255]
func clampFloatToUint8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// roundToUint8 rounds v to the nearest integer and saturates to the 8-bit range.
func roundToUint8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clampFloatToUint8(math.Round(v)))
}
