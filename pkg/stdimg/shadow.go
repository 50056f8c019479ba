package stdimg

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HSVPlanes holds an image split into hue (degrees), saturation (0..1) and
// value (0..255) planes, row-major, plus the untouched alpha channel.
type HSVPlanes struct {
	Width, Height int
	H, S, V       []float64
	A             []uint8
}

// SplitHSV converts src to HSV planes.
func SplitHSV(src *image.NRGBA) *HSVPlanes {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	n := w * h
	p := &HSVPlanes{
		Width: w, Height: h,
		H: make([]float64, n), S: make([]float64, n), V: make([]float64, n),
		A: make([]uint8, n),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			col := colorful.Color{
				R: float64(src.Pix[i+0]) / 255.0,
				G: float64(src.Pix[i+1]) / 255.0,
				B: float64(src.Pix[i+2]) / 255.0,
			}
			k := y*w + x
			hh, ss, vv := col.Hsv()
			p.H[k] = hh
			p.S[k] = ss
			p.V[k] = vv * 255.0
			p.A[k] = src.Pix[i+3]
		}
	}
	return p
}

// ToNRGBA recombines the planes into an 8-bit image.
func (p *HSVPlanes) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			k := y*p.Width + x
			col := colorful.Hsv(p.H[k], p.S[k], clamp01(p.V[k]/255.0))
			i := out.PixOffset(x, y)
			out.Pix[i+0] = roundToUint8(col.R * 255.0)
			out.Pix[i+1] = roundToUint8(col.G * 255.0)
			out.Pix[i+2] = roundToUint8(col.B * 255.0)
			out.Pix[i+3] = p.A[k]
		}
	}
	return out
}

// ScaleValue multiplies every row of the value plane pointwise by mask, which
// must have one entry per column. Hue, saturation and alpha are left alone.
// It returns mean(V after)/mean(V before), or 1 when the image has no brightness.
func (p *HSVPlanes) ScaleValue(mask []float64) float64 {
	if len(p.V) == 0 {
		return 1
	}
	before := stat.Mean(p.V, nil)
	for y := 0; y < p.Height; y++ {
		row := p.V[y*p.Width : (y+1)*p.Width]
		floats.Mul(row, mask)
	}
	if before == 0 {
		return 1
	}
	return stat.Mean(p.V, nil) / before
}

// GradientMask returns width values falling linearly from 1.0 at the left
// edge to 0.0 at the right edge.
func GradientMask(width int) []float64 {
	switch {
	case width <= 0:
		return nil
	case width == 1:
		return []float64{1}
	}
	return floats.Span(make([]float64, width), 1, 0)
}

// AddShadow darkens src from left to right by scaling the HSV value channel
// with GradientMask. It returns the shaded image and the ratio of mean value
// after to mean value before, a diagnostic in [0,1].
func AddShadow(src *image.NRGBA) (*image.NRGBA, float64) {
	if src == nil {
		return nil, 1
	}
	p := SplitHSV(src)
	ratio := p.ScaleValue(GradientMask(p.Width))
	return p.ToNRGBA(), ratio
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
