package lasertrace

// maxTraceSteps bounds a single boundary walk against pathological inputs.
const maxTraceSteps = 20000

// The 8-neighbour clock used by both the contour tracer and the skeleton
// chain tracer: N, NE, E, SE, S, SW, W, NW indexed 0-7.
var (
	clockDx = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	clockDy = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// isBorder reports whether (x, y) is a foreground pixel with at least one
// 4-neighbour that is background or outside the mask.
func isBorder(mask *Mask, x, y int) bool {
	if mask.Get(x, y) == 0 {
		return false
	}
	return mask.Get(x-1, y) == 0 || mask.Get(x+1, y) == 0 ||
		mask.Get(x, y-1) == 0 || mask.Get(x, y+1) == 0
}

// TraceBoundary walks the outer boundary of the connected component that
// contains the given border pixel using Moore-neighbour tracing. At each step
// the 8 neighbours are probed clockwise, resuming two clock positions back
// from the direction of the previous move, and the first foreground
// neighbour is taken. The walk stops when it returns to the start pixel or
// after the safety bound. Holes inside the component are left untraced.
func TraceBoundary(mask *Mask, start Point) []Point {
	contour := make([]Point, 0, 64)
	contour = append(contour, start)

	cur := start
	d := 7

	for step := 0; step < maxTraceSteps; step++ {
		found := false
		for i := 0; i < 8; i++ {
			nd := (d + 6 + i) % 8
			nx, ny := cur.X+clockDx[nd], cur.Y+clockDy[nd]
			if mask.Get(nx, ny) != 0 {
				cur = Point{nx, ny}
				d = nd
				found = true
				break
			}
		}
		if !found {
			break
		}
		if cur == start {
			break
		}
		contour = append(contour, cur)
	}
	return contour
}

// TraceContours extracts the outer boundary polygon of every connected
// foreground component of the mask, in row-major discovery order.
func TraceContours(mask *Mask) [][]Point {
	contours := make([][]Point, 0)
	for _, reg := range FindRegions(mask) {
		if c := TraceRegionBoundary(mask, reg); len(c) > 0 {
			contours = append(contours, c)
		}
	}
	return contours
}

// TraceRegionBoundary walks the outer boundary of a single region. The walk
// starts at the region's topmost-leftmost pixel, which always lies on the
// outer boundary, never on a hole.
func TraceRegionBoundary(mask *Mask, reg *Region) []Point {
	if len(reg.Points) == 0 {
		return nil
	}
	start := reg.Points[0]
	for _, p := range reg.Points {
		if p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
		}
	}
	if !isBorder(mask, start.X, start.Y) {
		return nil
	}
	return TraceBoundary(mask, start)
}
