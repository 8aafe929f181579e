package lasertrace

import (
	"image"
	"image/color"
	"image/draw"
)

// maskFromRows builds a mask from a textual raster where '#' marks a
// foreground cell.
func maskFromRows(rows ...string) *Mask {
	h := len(rows)
	w := len(rows[0])
	m := NewMask(w, h)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.Set(x, y, 1)
			}
		}
	}
	return m
}

// whiteImage returns an opaque white canvas.
func whiteImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	return img
}

// blacken fills the given rectangle of the image with opaque black.
func blacken(img *image.NRGBA, x0, y0, x1, y1 int) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{color.Black}, image.Point{}, draw.Src)
}
