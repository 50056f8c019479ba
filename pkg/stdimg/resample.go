package stdimg

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// edgeEps absorbs float error when a mapped coordinate lands on the last row or column.
const edgeEps = 1e-9

// sampleBilinear samples src at floating coordinates (x,y) using bilinear
// interpolation. Coordinates outside [0,w-1]x[0,h-1] yield zero on every channel.
func sampleBilinear(src *image.NRGBA, x, y float64) (r, g, b, a float64) {
	bx := src.Bounds()
	w := bx.Dx()
	h := bx.Dy()
	if w == 0 || h == 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	maxX := float64(w - 1)
	maxY := float64(h - 1)
	if x < -edgeEps || y < -edgeEps || x > maxX+edgeEps || y > maxY+edgeEps {
		return
	}
	x = math.Min(math.Max(x, 0), maxX)
	y = math.Min(math.Max(y, 0), maxY)

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	xFrac := x - float64(x0)
	yFrac := y - float64(y0)

	i00 := src.PixOffset(bx.Min.X+x0, bx.Min.Y+y0)
	i10 := src.PixOffset(bx.Min.X+x1, bx.Min.Y+y0)
	i01 := src.PixOffset(bx.Min.X+x0, bx.Min.Y+y1)
	i11 := src.PixOffset(bx.Min.X+x1, bx.Min.Y+y1)

	w00 := (1 - xFrac) * (1 - yFrac)
	w10 := xFrac * (1 - yFrac)
	w01 := (1 - xFrac) * yFrac
	w11 := xFrac * yFrac

	var acc [4]float64
	for c := 0; c < 4; c++ {
		acc[c] = w00*float64(src.Pix[i00+c]) + w10*float64(src.Pix[i10+c]) +
			w01*float64(src.Pix[i01+c]) + w11*float64(src.Pix[i11+c])
	}
	return acc[0], acc[1], acc[2], acc[3]
}

// ResizeToFit downscales src so that neither side exceeds maxSide, keeping
// the aspect ratio. Images that already fit, or maxSide <= 0, come back as a copy.
func ResizeToFit(src *image.NRGBA, maxSide int) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return CloneNRGBA(src)
	}
	scale := float64(maxSide) / float64(max(w, h))
	dw := max(1, int(math.Round(float64(w)*scale)))
	dh := max(1, int(math.Round(float64(h)*scale)))
	out := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(out, out.Bounds(), src, b, xdraw.Src, nil)
	return out
}
