package lasertrace

// Thin reduces the foreground of the mask to a one-pixel-wide topological
// skeleton using the Zhang-Suen two-subiteration parallel thinning scheme.
// Let p2..p9 be the 8 neighbours of a pixel, labelled clockwise starting at
// north. A foreground pixel is deleted when its neighbour count B lies in
// [2,6], the cyclic sequence p2..p9 contains exactly one 0-to-1 transition
// and the subiteration-specific neighbour products vanish. Marked pixels are
// cleared only after a full sweep, and the loop ends when a pair of
// subiterations deletes nothing. Border rows and columns are never examined.
// The input mask is left untouched.
func Thin(mask *Mask) *Mask {
	skel := mask.Clone()
	if skel.Width < 3 || skel.Height < 3 {
		return skel
	}

	toRemove := make([]Point, 0, 128)
	for {
		deleted := false
		for _, sub := range [2]int{1, 2} {
			toRemove = toRemove[:0]
			for y := 1; y < skel.Height-1; y++ {
				for x := 1; x < skel.Width-1; x++ {
					if skel.Get(x, y) == 0 {
						continue
					}
					if thinnable(skel, x, y, sub) {
						toRemove = append(toRemove, Point{x, y})
					}
				}
			}
			for _, p := range toRemove {
				skel.Set(p.X, p.Y, 0)
			}
			if len(toRemove) > 0 {
				deleted = true
			}
		}
		if !deleted {
			break
		}
	}
	return skel
}

// thinnable evaluates the Zhang-Suen deletion conditions for the given
// subiteration at (x, y).
func thinnable(m *Mask, x, y, sub int) bool {
	p2 := m.Get(x, y-1)
	p3 := m.Get(x+1, y-1)
	p4 := m.Get(x+1, y)
	p5 := m.Get(x+1, y+1)
	p6 := m.Get(x, y+1)
	p7 := m.Get(x-1, y+1)
	p8 := m.Get(x-1, y)
	p9 := m.Get(x-1, y-1)

	b := int(p2) + int(p3) + int(p4) + int(p5) + int(p6) + int(p7) + int(p8) + int(p9)
	if b < 2 || b > 6 {
		return false
	}

	seq := [9]uint8{p2, p3, p4, p5, p6, p7, p8, p9, p2}
	a := 0
	for i := 0; i < 8; i++ {
		if seq[i] == 0 && seq[i+1] == 1 {
			a++
		}
	}
	if a != 1 {
		return false
	}

	if sub == 1 {
		return p2*p4*p6 == 0 && p4*p6*p8 == 0
	}
	return p2*p4*p8 == 0 && p2*p6*p8 == 0
}
