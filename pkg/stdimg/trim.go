package stdimg

import (
	"image"
	"image/color"
	"image/draw"
)

// PixelPredicate reports whether a single pixel carries no content.
// A row or column is empty when every pixel in it satisfies the predicate.
type PixelPredicate func(c color.NRGBA) bool

// Transparent treats fully transparent pixels as empty.
func Transparent(c color.NRGBA) bool { return c.A == 0 }

// Black treats pixels with zero red, green and blue as empty, whatever their alpha.
func Black(c color.NRGBA) bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// TrimEdges removes empty rows from the top and bottom edges, then empty
// columns from the left and right edges of what is left. Scanning stops at
// the first non-empty line from each side, so interior empty lines survive.
// If every line is empty the result is a zero-area image and ErrEmptyImage.
func TrimEdges(src *image.NRGBA, empty PixelPredicate) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	px := func(x, y int) color.NRGBA {
		i := src.PixOffset(x, y)
		return color.NRGBA{src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]}
	}
	rowEmpty := func(y int) bool {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !empty(px(x, y)) {
				return false
			}
		}
		return true
	}
	colEmpty := func(x, y0, y1 int) bool {
		for y := y0; y < y1; y++ {
			if !empty(px(x, y)) {
				return false
			}
		}
		return true
	}

	top := b.Min.Y
	for top < b.Max.Y && rowEmpty(top) {
		top++
	}
	if top == b.Max.Y {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), ErrEmptyImage
	}
	bottom := b.Max.Y
	for bottom > top && rowEmpty(bottom-1) {
		bottom--
	}

	left := b.Min.X
	for left < b.Max.X && colEmpty(left, top, bottom) {
		left++
	}
	right := b.Max.X
	for right > left && colEmpty(right-1, top, bottom) {
		right--
	}

	rect := image.Rect(left, top, right, bottom)
	out := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}
