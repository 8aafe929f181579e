package lasertrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmooth_WindowTruncatedAtEndpoints(t *testing.T) {
	assert := assert.New(t)

	vs := smooth([]Point{{0, 0}, {10, 0}, {20, 0}})

	assert.Equal([]Vertex{{5, 0}, {10, 0}, {15, 0}}, vs)
}

func TestSimplify_ZeroEpsilonIsIdentity(t *testing.T) {
	assert := assert.New(t)

	points := []Vertex{{0, 0}, {1, 0}, {2, 0}, {3, 0.4}, {4, 0}}
	out := Simplify(points, 0)

	assert.Equal(points, out)
	// The result is a copy, not an alias.
	out[0].X = 99
	assert.Equal(0.0, points[0].X)
}

func TestSimplify_DropsCollinearPoints(t *testing.T) {
	assert := assert.New(t)

	points := []Vertex{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	out := Simplify(points, 0.8)

	assert.Equal([]Vertex{{0, 0}, {4, 0}}, out)
}

func TestSimplify_KeepsSignificantDeviation(t *testing.T) {
	assert := assert.New(t)

	points := []Vertex{{0, 0}, {5, 3}, {10, 0}}
	out := Simplify(points, 0.8)

	assert.Equal(points, out)
}

func TestMergeChains_BridgesSmallGaps(t *testing.T) {
	assert := assert.New(t)

	chains := [][]Point{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{5, 0}, {6, 0}, {7, 0}, {8, 0}},
	}
	merged := MergeChains(chains, mergeDistance)

	assert.Len(merged, 1)
	assert.Len(merged[0], 8)
	assert.Equal(Point{0, 0}, merged[0][0])
	assert.Equal(Point{8, 0}, merged[0][7])
}

func TestMergeChains_ReversesToJoin(t *testing.T) {
	assert := assert.New(t)

	// The chains end near each other, so the second must be reversed.
	chains := [][]Point{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}},
	}
	merged := MergeChains(chains, mergeDistance)

	assert.Len(merged, 1)
	assert.Len(merged[0], 12)
	// The joined endpoints are adjacent in the result.
	assert.Equal(Point{5, 0}, merged[0][5])
	assert.Equal(Point{5, 3}, merged[0][6])
	assert.Equal(Point{0, 3}, merged[0][11])
}

func TestMergeChains_RespectsThreshold(t *testing.T) {
	chains := [][]Point{
		{{0, 0}, {1, 0}, {2, 0}},
		{{10, 0}, {11, 0}, {12, 0}},
	}
	assert.Len(t, MergeChains(chains, mergeDistance), 2)
}

func TestOptimize_NoiseDiscarded(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Optimize([]Point{{0, 0}, {1, 0}}, Centerline))
	assert.Nil(Optimize([]Point{{0, 0}, {1, 0}, {2, 0}}, Centerline))
	assert.NotNil(Optimize([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Centerline))
}

func TestOptimize_StraightCenterline(t *testing.T) {
	assert := assert.New(t)

	points := make([]Point, 40)
	for i := range points {
		points[i] = Point{10 + i, 50}
	}
	path := Optimize(points, Centerline)

	assert.NotNil(path)
	assert.False(path.Closed)
	assert.Len(path.Points, 2)
	assert.InDelta(10.5, path.Points[0].X, 1e-9)
	assert.InDelta(48.5, path.Points[1].X, 1e-9)
	assert.InDelta(50, path.Points[0].Y, 1e-9)
}

func TestOptimize_ClosesLoops(t *testing.T) {
	assert := assert.New(t)

	// A square loop whose trace ends next to its start.
	var points []Point
	for x := 0; x <= 30; x++ {
		points = append(points, Point{x, 0})
	}
	for y := 1; y <= 30; y++ {
		points = append(points, Point{30, y})
	}
	for x := 29; x >= 0; x-- {
		points = append(points, Point{x, 30})
	}
	for y := 29; y >= 1; y-- {
		points = append(points, Point{0, y})
	}
	path := Optimize(points, Outline)

	assert.NotNil(path)
	assert.True(path.Closed)
	assert.Equal(path.Points[0], path.Points[len(path.Points)-1])
}

func TestShoelaceArea(t *testing.T) {
	assert := assert.New(t)

	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.InDelta(16.0, shoelaceArea(square), 1e-9)

	// Orientation does not matter.
	reversed := []Point{{0, 4}, {4, 4}, {4, 0}, {0, 0}}
	assert.InDelta(16.0, shoelaceArea(reversed), 1e-9)

	assert.Equal(0.0, shoelaceArea([]Point{{0, 0}, {1, 1}}))
}
