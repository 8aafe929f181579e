package lasertrace

// PathKind tags an optimized path with the layer it belongs to.
type PathKind int

const (
	// Outline paths follow the boundary of a filled region and end up on the
	// cut layer.
	Outline PathKind = iota
	// Centerline paths approximate the medial axis of a thin stroke and end
	// up on the engrave layer.
	Centerline
)

const (
	// mergeDistance is the endpoint gap below which two skeleton chains are
	// joined into one. Thinning breaks chains near junctions by a pixel or
	// two, so a small threshold suffices for clean inputs; gap-heavy scans
	// may need it raised, up to 14.0.
	mergeDistance = 4.0

	// rdpEpsilon is the Ramer-Douglas-Peucker simplification tolerance.
	rdpEpsilon = 0.8

	// Closure thresholds: a path whose endpoints are closer than these is
	// snapped shut.
	outlineCloseDist    = 20.0
	centerlineCloseDist = 5.0

	// minInputPoints discards traced polylines at or below this length as
	// noise before optimization.
	minInputPoints = 3
)

// Path is an optimized polyline tagged with its layer kind.
type Path struct {
	Points []Vertex
	Kind   PathKind
	Closed bool
}

// MergeChains repeatedly concatenates pixel chains whose endpoints lie within
// the merge distance of each other, reversing one side when needed, until no
// pair qualifies. This bridges the one-pixel gaps the thinning step
// introduces near junctions.
func MergeChains(chains [][]Point, maxDist float64) [][]Point {
	merged := true
	for merged {
		merged = false

	search:
		for i := 0; i < len(chains); i++ {
			for j := i + 1; j < len(chains); j++ {
				joined, ok := joinChains(chains[i], chains[j], maxDist)
				if !ok {
					continue
				}
				chains[i] = joined
				chains = append(chains[:j], chains[j+1:]...)
				merged = true
				break search
			}
		}
	}
	return chains
}

// joinChains concatenates a and b when a pair of their endpoints is within
// maxDist, orienting both chains so the joined endpoints meet.
func joinChains(a, b []Point, maxDist float64) ([]Point, bool) {
	dist := func(p, q Point) float64 {
		return p.vertex().Dist(q.vertex())
	}
	af, al := a[0], a[len(a)-1]
	bf, bl := b[0], b[len(b)-1]

	switch {
	case dist(al, bf) <= maxDist:
		return append(a, b...), true
	case dist(al, bl) <= maxDist:
		return append(a, reverseChain(b)...), true
	case dist(af, bf) <= maxDist:
		return append(reverseChain(a), b...), true
	case dist(af, bl) <= maxDist:
		return append(reverseChain(b), a...), true
	}
	return nil, false
}

func reverseChain(c []Point) []Point {
	r := make([]Point, len(c))
	for i, p := range c {
		r[len(c)-1-i] = p
	}
	return r
}

// Optimize turns a traced pixel polyline into an emit-ready path: window-3
// moving average smoothing, RDP simplification and closure detection, in that
// order. Polylines at or below the noise length, or collapsing to fewer than
// two points, yield nil. The steps are not idempotent: smoothing an already
// smoothed polyline moves its vertices again.
func Optimize(points []Point, kind PathKind) *Path {
	if len(points) <= minInputPoints {
		return nil
	}

	vs := smooth(points)
	vs = Simplify(vs, rdpEpsilon)
	if len(vs) < 2 {
		return nil
	}

	path := &Path{Points: vs, Kind: kind}
	closeDist := outlineCloseDist
	if kind == Centerline {
		closeDist = centerlineCloseDist
	}
	if vs[0].Dist(vs[len(vs)-1]) < closeDist {
		vs[len(vs)-1] = vs[0]
		path.Closed = true
	}
	return path
}

// smooth applies a moving average with window 3, truncating the window at the
// endpoints. The summation order is fixed so the output is deterministic.
func smooth(points []Point) []Vertex {
	out := make([]Vertex, len(points))
	for i, p := range points {
		sx, sy := float64(p.X), float64(p.Y)
		n := 1.0
		if i > 0 {
			sx += float64(points[i-1].X)
			sy += float64(points[i-1].Y)
			n++
		}
		if i < len(points)-1 {
			sx += float64(points[i+1].X)
			sy += float64(points[i+1].Y)
			n++
		}
		out[i] = Vertex{sx / n, sy / n}
	}
	return out
}

// Simplify reduces the polyline with the Ramer-Douglas-Peucker algorithm:
// endpoints are kept and each interval is split at its interior point of
// maximum perpendicular distance to the chord, dropping the interior when
// that maximum falls below epsilon. The recursion is run over an explicit
// stack so the depth is bounded regardless of the polyline length. A
// non-positive epsilon returns the input unchanged.
func Simplify(points []Vertex, epsilon float64) []Vertex {
	if epsilon <= 0 || len(points) < 3 {
		out := make([]Vertex, len(points))
		copy(out, points)
		return out
	}

	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true

	type span struct{ lo, hi int }
	stack := []span{{0, len(points) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var dmax float64
		idx := -1
		for i := s.lo + 1; i < s.hi; i++ {
			if d := perpDist(points[i], points[s.lo], points[s.hi]); d > dmax {
				dmax = d
				idx = i
			}
		}
		if idx != -1 && dmax > epsilon {
			keep[idx] = true
			stack = append(stack, span{s.lo, idx}, span{idx, s.hi})
		}
	}

	out := make([]Vertex, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// shoelaceArea returns the absolute signed area of the pixel polygon.
func shoelaceArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
