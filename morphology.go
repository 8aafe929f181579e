package lasertrace

// DefaultDilateRadius is the number of dilation passes used to close the
// figure before the silhouette is extracted.
const DefaultDilateRadius = 4

// Dilate grows the foreground by r iterative 4-neighbour passes. Each pass
// copies every foreground cell together with its N/S/E/W neighbours into a
// fresh buffer, so connectivity is preserved and fully covered regions are
// left untouched.
func Dilate(mask *Mask, r int) *Mask {
	src := mask
	for i := 0; i < r; i++ {
		dst := NewMask(src.Width, src.Height)
		for y := 0; y < src.Height; y++ {
			for x := 0; x < src.Width; x++ {
				if src.Get(x, y) == 0 {
					continue
				}
				dst.Set(x, y, 1)
				if x > 0 {
					dst.Set(x-1, y, 1)
				}
				if x < src.Width-1 {
					dst.Set(x+1, y, 1)
				}
				if y > 0 {
					dst.Set(x, y-1, 1)
				}
				if y < src.Height-1 {
					dst.Set(x, y+1, 1)
				}
			}
		}
		src = dst
	}
	if src == mask {
		return mask.Clone()
	}
	return src
}

// FloodBackground marks every background cell reachable from (0,0) through
// 4-connected background cells. The top-left corner is guaranteed to be
// background because the image is padded with a white border beforehand.
// Cells not reached are either foreground or holes enclosed by it.
func FloodBackground(mask *Mask) *Mask {
	bg := NewMask(mask.Width, mask.Height)
	if mask.Width == 0 || mask.Height == 0 || mask.Get(0, 0) != 0 {
		return bg
	}

	stack := make([]Point, 0, mask.Width*2)
	stack = append(stack, Point{0, 0})
	bg.Set(0, 0, 1)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range [4]Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
			if n.X < 0 || n.Y < 0 || n.X >= mask.Width || n.Y >= mask.Height {
				continue
			}
			if mask.Get(n.X, n.Y) == 0 && bg.Get(n.X, n.Y) == 0 {
				bg.Set(n.X, n.Y, 1)
				stack = append(stack, n)
			}
		}
	}
	return bg
}

// Invert flips every cell of the mask.
func Invert(mask *Mask) *Mask {
	dst := NewMask(mask.Width, mask.Height)
	for i, v := range mask.Pix {
		if v == 0 {
			dst.Pix[i] = 1
		}
	}
	return dst
}

// Silhouette produces a solid blob covering the figure's hull: the binary
// mask is dilated to close small gaps, the surrounding background is flooded
// from the border and everything the flood could not reach is kept. Internal
// holes end up filled because the flood cannot enter them.
func Silhouette(mask *Mask, r int) *Mask {
	return Invert(FloodBackground(Dilate(mask, r)))
}
