package stdimg

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in image space, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Circle is a disc in image space. Radius is in pixels.
type Circle struct {
	Center Point
	Radius float64
}

// DefaultCircle fills in whichever of center and radius is nil for a w x h image.
// The default center is the geometric center. The default radius is half the
// shorter side, reduced by how far the center sits from the geometric center
// along that shorter axis.
func DefaultCircle(w, h int, center *Point, radius *float64) Circle {
	geo := Point{X: float64(w) / 2, Y: float64(h) / 2}
	c := Circle{Center: geo}
	if center != nil {
		c.Center = *center
	}
	if radius != nil {
		c.Radius = *radius
		return c
	}
	offset := math.Abs(c.Center.X - geo.X)
	if h < w {
		offset = math.Abs(c.Center.Y - geo.Y)
	}
	c.Radius = math.Floor(float64(min(w, h))/2) - offset
	return c
}

// Contains reports whether the center of pixel (x,y) lies inside the disc.
// Pixels exactly on the rim count as inside.
func (c Circle) Contains(x, y int) bool {
	dx := float64(x) + 0.5 - c.Center.X
	dy := float64(y) + 0.5 - c.Center.Y
	return math.Hypot(dx, dy) <= c.Radius
}

// CircleAlpha builds a w x h alpha mask: 255 inside the disc, 0 elsewhere.
func CircleAlpha(w, h int, c Circle) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.Contains(x, y) {
				mask.Pix[mask.PixOffset(x, y)] = 255
			}
		}
	}
	return mask
}

// MaskCircle replaces the alpha channel of src with a disc mask and trims the
// fully transparent border, so the result circumscribes the disc.
// RGB values are kept as they are.
func MaskCircle(src *image.NRGBA, c Circle) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) || c.Radius < 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidCircle, c.Radius)
	}
	if math.IsNaN(c.Center.X) || math.IsNaN(c.Center.Y) ||
		c.Center.X < 0 || c.Center.Y < 0 || c.Center.X > float64(w) || c.Center.Y > float64(h) {
		return nil, fmt.Errorf("%w: center (%v,%v) outside %dx%d image", ErrInvalidCircle, c.Center.X, c.Center.Y, w, h)
	}
	if c.Radius <= 0 {
		return nil, fmt.Errorf("%w: circle radius %v leaves no pixels", ErrEmptyImage, c.Radius)
	}

	out := CloneNRGBA(src)
	mask := CircleAlpha(w, h, c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[out.PixOffset(x, y)+3] = mask.Pix[mask.PixOffset(x, y)]
		}
	}
	return TrimEdges(out, Transparent)
}
