package stdimg

import (
	"image"
	"math"
)

// Default coefficients give the strong barrel look used for planets.
const (
	DefaultK1 = 0.8
	DefaultK2 = 4.0
)

// Distort applies a radial barrel/pincushion warp by inverse mapping.
//
// Every output pixel (px,py) is normalized to x = px/(w/2)-1, y = py/(h/2)-1,
// scaled by mr = 1 + k1*r + k2*r^2 with r = sqrt(x^2+y^2), and mapped back to
// pixel space to find the source coordinate. Samples are bilinear; sources
// outside the frame read as zero on every channel, which leaves a black
// border when k1,k2 > 0. The output has the same size as src.
func Distort(src *image.NRGBA, k1, k2 float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}
	xc := float64(w) / 2
	yc := float64(h) / 2
	for py := 0; py < h; py++ {
		y := float64(py)/yc - 1
		for px := 0; px < w; px++ {
			x := float64(px)/xc - 1
			r := math.Hypot(x, y)
			mr := 1 + k1*r + k2*r*r
			sx := (x*mr + 1) * xc
			sy := (y*mr + 1) * yc
			rf, gf, bf, af := sampleBilinear(src, sx, sy)
			i := out.PixOffset(px, py)
			out.Pix[i+0] = roundToUint8(rf)
			out.Pix[i+1] = roundToUint8(gf)
			out.Pix[i+2] = roundToUint8(bf)
			out.Pix[i+3] = roundToUint8(af)
		}
	}
	return out
}

// Spherize distorts src and trims the black border the warp leaves behind.
//
// The trim treats any all-black edge row or column as border, so textures
// whose own edges are pure black lose those lines too, even with k1=k2=0.
func Spherize(src *image.NRGBA, k1, k2 float64) (*image.NRGBA, error) {
	return TrimEdges(Distort(src, k1, k2), Black)
}
