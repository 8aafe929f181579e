package lasertrace

import "image"

const (
	// DefaultThreshold is the luminance cutoff below which a pixel is
	// considered part of the line art.
	DefaultThreshold = 180

	// alphaCutoff marks pixels with a lower alpha value as fully transparent,
	// hence background.
	alphaCutoff = 50
)

// Binarize converts the image to a binary mask, treating the source as dark
// line art on a light background. A pixel is foreground when its alpha is at
// least the transparency cutoff and its luminance falls below the threshold.
// Binarization is idempotent: re-binarizing a rendered binary mask yields the
// same mask.
func Binarize(img *image.NRGBA, threshold int) *Mask {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	mask := NewMask(dx, dy)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			i := img.PixOffset(x, y)
			r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
			if a < alphaCutoff {
				continue
			}
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			if lum < float64(threshold) {
				mask.Set(x, y, 1)
			}
		}
	}
	return mask
}
