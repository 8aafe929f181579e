package lasertrace

// minChainLen discards skeleton chains shorter than this many pixels.
const minChainLen = 3

// TraceChains extracts greedy pixel chains from a thinned mask. The mask is
// scanned row-major and each unvisited skeleton pixel starts a chain; at
// every step the 8 neighbours are probed in the fixed N, NE, E, SE, S, SW, W,
// NW order and the first unvisited skeleton pixel is appended. A chain ends
// when no such neighbour remains. Branch points are not treated specially:
// one outgoing arm is followed and the remaining arms become new chains,
// which the path optimizer may reconnect later. Every skeleton pixel is
// visited once and appears in at most one chain; chains shorter than the
// minimum length are dropped together with their pixels.
func TraceChains(skel *Mask) [][]Point {
	visited := NewMask(skel.Width, skel.Height)
	chains := make([][]Point, 0)

	for y := 0; y < skel.Height; y++ {
		for x := 0; x < skel.Width; x++ {
			if skel.Get(x, y) == 0 || visited.Get(x, y) != 0 {
				continue
			}

			chain := []Point{{x, y}}
			visited.Set(x, y, 1)
			cur := Point{x, y}

			for {
				next, ok := nextChainPixel(skel, visited, cur)
				if !ok {
					break
				}
				chain = append(chain, next)
				visited.Set(next.X, next.Y, 1)
				cur = next
			}

			if len(chain) >= minChainLen {
				chains = append(chains, chain)
			}
		}
	}
	return chains
}

// nextChainPixel returns the first unvisited skeleton neighbour of p in the
// fixed clock order.
func nextChainPixel(skel, visited *Mask, p Point) (Point, bool) {
	for d := 0; d < 8; d++ {
		nx, ny := p.X+clockDx[d], p.Y+clockDy[d]
		if skel.Get(nx, ny) != 0 && visited.Get(nx, ny) == 0 {
			return Point{nx, ny}, true
		}
	}
	return Point{}, false
}
