package lasertrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPaths() []Path {
	return []Path{
		{
			Points: []Vertex{{10, 10}, {40, 10}, {40, 40}, {10, 10}},
			Kind:   Outline,
			Closed: true,
		},
		{
			Points: []Vertex{{10, 10}, {20, 20.5}},
			Kind:   Centerline,
		},
	}
}

func TestSVGEncode_DocumentAttributes(t *testing.T) {
	assert := assert.New(t)

	enc := &svgEncoder{width: 100, height: 50, offset: Padding, cutCol: CutColor, engrCol: EngraveColor}
	doc := enc.encode(testPaths(), LayerFull)

	// Millimetre sizing derives from 96 DPI.
	assert.Contains(doc, `width="26.46mm"`)
	assert.Contains(doc, `height="13.23mm"`)
	assert.Contains(doc, `viewBox="0 0 100 50"`)
	assert.Contains(doc, `fill="none"`)
	assert.Contains(doc, `stroke-width="2"`)
	assert.Contains(doc, `stroke-linecap="round"`)
	assert.Contains(doc, `stroke-linejoin="round"`)
}

func TestSVGEncode_PaddingStrippedFromCoordinates(t *testing.T) {
	assert := assert.New(t)

	enc := &svgEncoder{width: 100, height: 50, offset: Padding, cutCol: CutColor, engrCol: EngraveColor}
	doc := enc.encode(testPaths(), LayerFull)

	assert.Contains(doc, `d="M 0,0 L 30,0 L 30,30 L 0,0 Z"`)
	assert.Contains(doc, `d="M 0,0 L 10,10.5"`)
}

func TestSVGEncode_LayerFiltering(t *testing.T) {
	assert := assert.New(t)

	enc := &svgEncoder{width: 100, height: 50, offset: Padding, cutCol: CutColor, engrCol: EngraveColor}

	cut := enc.encode(testPaths(), LayerCut)
	assert.Contains(cut, CutColor)
	assert.NotContains(cut, EngraveColor)

	engrave := enc.encode(testPaths(), LayerEngrave)
	assert.Contains(engrave, EngraveColor)
	assert.NotContains(engrave, CutColor)

	full := enc.encode(testPaths(), LayerFull)
	assert.Contains(full, CutColor)
	assert.Contains(full, EngraveColor)
	assert.Equal(2, strings.Count(full, "<path "))
}

func TestSVGEncode_ClosedPathsCarryZ(t *testing.T) {
	assert := assert.New(t)

	enc := &svgEncoder{width: 100, height: 50, offset: Padding, cutCol: CutColor, engrCol: EngraveColor}
	doc := enc.encode(testPaths(), LayerFull)

	assert.Equal(1, strings.Count(doc, "Z"))
}

func TestParseLayer(t *testing.T) {
	assert := assert.New(t)

	for name, want := range map[string]Layer{"full": LayerFull, "cut": LayerCut, "engrave": LayerEngrave} {
		got, err := ParseLayer(name)
		assert.NoError(err)
		assert.Equal(want, got)
		assert.Equal(name, got.String())
	}

	_, err := ParseLayer("outline")
	assert.Error(err)
}
