package lasertrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceBoundary_SolidSquare(t *testing.T) {
	assert := assert.New(t)

	mask := maskFromRows(
		"......",
		".####.",
		".####.",
		".####.",
		".####.",
		"......",
	)
	contour := TraceBoundary(mask, Point{1, 1})

	// The walk follows the 12 perimeter pixels and returns to the start.
	assert.Len(contour, 12)
	assert.Equal(Point{1, 1}, contour[0])
	for _, p := range contour {
		assert.True(isBorder(mask, p.X, p.Y), "contour pixel %v is not on the border", p)
	}

	// Perimeter pixels appear exactly once.
	seen := map[Point]bool{}
	for _, p := range contour {
		assert.False(seen[p])
		seen[p] = true
	}
}

func TestTraceBoundary_ThinLineWalksOutAndBack(t *testing.T) {
	assert := assert.New(t)

	mask := maskFromRows(
		".......",
		".#####.",
		".......",
	)
	contour := TraceBoundary(mask, Point{1, 1})

	// A one pixel line is traversed east and then back west.
	assert.Equal(Point{1, 1}, contour[0])
	assert.Contains(contour, Point{5, 1})
	assert.Len(contour, 8)
}

func TestTraceBoundary_IsolatedPixel(t *testing.T) {
	contour := TraceBoundary(maskFromRows("...", ".#.", "..."), Point{1, 1})
	assert.Len(t, contour, 1)
}

func TestTraceContours_MultipleBlobs(t *testing.T) {
	assert := assert.New(t)

	mask := maskFromRows(
		"##....",
		"##....",
		"....##",
		"....##",
	)
	contours := TraceContours(mask)

	assert.Len(contours, 2)
	assert.Equal(Point{0, 0}, contours[0][0])
	assert.Equal(Point{4, 2}, contours[1][0])
}

func TestTraceRegionBoundary_SkipsHoles(t *testing.T) {
	assert := assert.New(t)

	mask := maskFromRows(
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	regions := FindRegions(mask)
	// The frame and the centre pixel are distinct 4-connected regions.
	assert.Len(regions, 2)

	contour := TraceRegionBoundary(mask, regions[0])

	// Only the outer boundary of the frame is walked: the 16 perimeter
	// pixels, not the pixels facing the hole.
	assert.Len(contour, 16)
	for _, p := range contour {
		onEdge := p.X == 0 || p.Y == 0 || p.X == 4 || p.Y == 4
		assert.True(onEdge, "pixel %v does not lie on the outer boundary", p)
	}
}
