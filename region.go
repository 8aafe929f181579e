package lasertrace

// minRegionArea is the noise floor: regions with fewer foreground pixels are
// dropped before any tracing takes place.
const minRegionArea = 15

// Region is a maximal 4-connected set of foreground pixels together with its
// cached attributes.
type Region struct {
	Points []Point
	MinX   int
	MaxX   int
	MinY   int
	MaxY   int
}

// Area returns the number of pixels covered by the region.
func (r *Region) Area() int {
	return len(r.Points)
}

// AvgWidth estimates the stroke thickness of the region as twice its area
// divided by the longer side of its bounding box. A straight stroke scores
// about twice its real pixel width, a filled rectangle twice its shorter
// extent.
func (r *Region) AvgWidth() float64 {
	bw := r.MaxX - r.MinX + 1
	bh := r.MaxY - r.MinY + 1
	d := bw
	if bh > d {
		d = bh
	}
	return 2 * float64(len(r.Points)) / float64(d)
}

// Mask renders the region into a fresh mask of the same extent as the source,
// leaving every other cell background.
func (r *Region) Mask(width, height int) *Mask {
	m := NewMask(width, height)
	for _, p := range r.Points {
		m.Set(p.X, p.Y, 1)
	}
	return m
}

// FindRegions partitions the foreground of the mask into 4-connected regions.
// The mask is scanned in row-major order and each unvisited foreground pixel
// seeds a depth-first flood fill over an explicit stack, so the returned
// regions are ordered row-major by their seed pixel.
func FindRegions(mask *Mask) []*Region {
	visited := NewMask(mask.Width, mask.Height)
	regions := make([]*Region, 0)

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if mask.Get(x, y) == 0 || visited.Get(x, y) != 0 {
				continue
			}

			reg := &Region{MinX: x, MaxX: x, MinY: y, MaxY: y}
			stack := []Point{{x, y}}
			visited.Set(x, y, 1)

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				reg.Points = append(reg.Points, p)

				if p.X < reg.MinX {
					reg.MinX = p.X
				}
				if p.X > reg.MaxX {
					reg.MaxX = p.X
				}
				if p.Y < reg.MinY {
					reg.MinY = p.Y
				}
				if p.Y > reg.MaxY {
					reg.MaxY = p.Y
				}

				for _, n := range [4]Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
					if mask.Get(n.X, n.Y) != 0 && visited.Get(n.X, n.Y) == 0 {
						visited.Set(n.X, n.Y, 1)
						stack = append(stack, n)
					}
				}
			}
			regions = append(regions, reg)
		}
	}
	return regions
}

// removeNoise clears every region below the noise floor from the mask and
// returns the surviving regions in discovery order.
func removeNoise(mask *Mask, regions []*Region) []*Region {
	kept := regions[:0]
	for _, reg := range regions {
		if reg.Area() < minRegionArea {
			for _, p := range reg.Points {
				mask.Set(p.X, p.Y, 0)
			}
			continue
		}
		kept = append(kept, reg)
	}
	return kept
}
