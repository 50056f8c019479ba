package stdimg

import "image"

// AdjustBrightness multiplies the RGB channels by factor, rounding and
// saturating at 255. Alpha is untouched and factor 1.0 returns an exact copy.
func AdjustBrightness(src *image.NRGBA, factor float64) *image.NRGBA {
	out := CloneNRGBA(src)
	if out == nil || factor == 1.0 {
		return out
	}
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i+0] = roundToUint8(float64(out.Pix[i+0]) * factor)
		out.Pix[i+1] = roundToUint8(float64(out.Pix[i+1]) * factor)
		out.Pix[i+2] = roundToUint8(float64(out.Pix[i+2]) * factor)
	}
	return out
}
