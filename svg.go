package lasertrace

import (
	"fmt"
	"strings"
)

// Stroke colours routed by the cutter software: green paths are cut, blue
// paths are engraved.
const (
	CutColor     = "#00ff00"
	EngraveColor = "#0000ff"
)

// pxPerMm converts 96 DPI pixels to millimetres (96 / 25.4).
const pxPerMm = 3.7795

// Layer selects which paths an SVG document contains.
type Layer int

const (
	// LayerFull emits both the cut and the engrave paths.
	LayerFull Layer = iota
	// LayerCut emits the closed outer contours only.
	LayerCut
	// LayerEngrave emits the stroke centerlines only.
	LayerEngrave
)

// String implements the flag.Value style naming for layers.
func (l Layer) String() string {
	switch l {
	case LayerCut:
		return "cut"
	case LayerEngrave:
		return "engrave"
	default:
		return "full"
	}
}

// ParseLayer maps a layer name to its Layer value.
func ParseLayer(s string) (Layer, error) {
	switch s {
	case "full":
		return LayerFull, nil
	case "cut":
		return LayerCut, nil
	case "engrave":
		return LayerEngrave, nil
	}
	return LayerFull, fmt.Errorf("unknown layer %q (expected full, cut or engrave)", s)
}

// svgEncoder renders optimized paths into an SVG document sized in
// millimetres, with the padding offset stripped from every coordinate.
type svgEncoder struct {
	width   int // unpadded image width in pixels
	height  int // unpadded image height in pixels
	offset  int // padding to subtract from every coordinate
	cutCol  string
	engrCol string
}

// encode writes the document for the requested layer. Each path becomes a
// single polyline element; closed paths carry a trailing Z so the cutter
// treats them as loops.
func (e *svgEncoder) encode(paths []Path, layer Layer) string {
	var sb strings.Builder

	wmm := float64(e.width) / pxPerMm
	hmm := float64(e.height) / pxPerMm

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.2fmm" height="%.2fmm" viewBox="0 0 %d %d">`+"\n",
		wmm, hmm, e.width, e.height)
	sb.WriteString(`<g fill="none" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` + "\n")

	for _, p := range paths {
		if layer == LayerCut && p.Kind != Outline {
			continue
		}
		if layer == LayerEngrave && p.Kind != Centerline {
			continue
		}
		e.encodePath(&sb, p)
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func (e *svgEncoder) encodePath(sb *strings.Builder, p Path) {
	stroke := e.cutCol
	if p.Kind == Centerline {
		stroke = e.engrCol
	}

	sb.WriteString(`<path d="`)
	for i, v := range p.Points {
		if i == 0 {
			fmt.Fprintf(sb, "M %s,%s", fmtCoord(v.X-float64(e.offset)), fmtCoord(v.Y-float64(e.offset)))
		} else {
			fmt.Fprintf(sb, " L %s,%s", fmtCoord(v.X-float64(e.offset)), fmtCoord(v.Y-float64(e.offset)))
		}
	}
	if p.Closed {
		sb.WriteString(" Z")
	}
	fmt.Fprintf(sb, `" stroke="%s"/>`+"\n", stroke)
}

// fmtCoord prints a coordinate with two decimals, trimming the fraction when
// it is zero so integer-valued vertices stay compact.
func fmtCoord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
