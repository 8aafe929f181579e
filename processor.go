package lasertrace

import (
	"errors"
	"image"
	"io"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/esimov/lasertrace/utils"
	pkgerr "github.com/pkg/errors"
)

// Padding is the white border, in pixels, added on all sides before
// binarization. It guarantees that (0,0) is background for the flood fill and
// that the silhouette contour of figures touching the image edge stays well
// defined. The emitter strips it from every output coordinate.
const Padding = 10

// Pipeline errors.
var (
	// ErrInvalidBuffer is returned when the pixel buffer length does not
	// match width*height*4.
	ErrInvalidBuffer = errors.New("pixel buffer length does not match the image dimensions")
	// ErrZeroDimension is returned when the image width or height is zero.
	ErrZeroDimension = errors.New("image width and height must be nonzero")
)

// Params holds the two user facing tuning knobs. Both are integers in
// [0, 100].
type Params struct {
	DetailLevel           int
	CenterlineSensitivity int
}

// DefaultParams is the starting point suggested for unseen images.
var DefaultParams = Params{DetailLevel: 50, CenterlineSensitivity: 50}

// SuggestParams proposes tracing parameters for the given pixel buffer.
// It currently returns the defaults regardless of content; the signature
// leaves room for content-driven heuristics.
func SuggestParams(pix []uint8, width, height int) Params {
	return DefaultParams
}

// Stats summarizes one tracing invocation.
type Stats struct {
	OutlineCount    int
	CenterlineCount int
	GapsDetected    int
	TotalPaths      int
}

// Result bundles the three emitted vector documents, the optimized paths they
// were rendered from and the tracing statistics.
type Result struct {
	Full    string
	Cut     string
	Engrave string
	Paths   []Path
	Stats   Stats
}

// Processor options.
type Processor struct {
	// DetailLevel controls how aggressively small regions are pruned,
	// from 0 (silhouette only) to 100 (keep everything above the noise
	// floor).
	DetailLevel int
	// CenterlineSensitivity moves the stroke-thickness boundary between
	// engraved centerlines and cut outlines, from 0 (almost everything is
	// outlined) to 100 (almost everything is engraved).
	CenterlineSensitivity int
	// Threshold is the binarization luminance cutoff; zero selects the
	// default.
	Threshold int
	// Layer selects which document Process writes.
	Layer Layer
	// MaxDim, when positive, rescales larger inputs down to this bound on
	// the longer side before tracing.
	MaxDim int
	// CutColor and EngraveColor override the default layer strokes when
	// non-empty.
	CutColor     string
	EngraveColor string
	// Spinner is the progress indicator used by the batch driver.
	Spinner *utils.Spinner
}

// Trace runs the geometric pipeline over a decoded image and returns the
// optimized paths in deterministic order: the silhouette first, then the
// detail outlines by descending region size, then the centerlines.
// Coordinates are in the padded frame; the SVG encoder subtracts the padding.
func (p *Processor) Trace(img *image.NRGBA) []Path {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	detail := utils.Clamp(p.DetailLevel, 0, 100)
	sensitivity := utils.Clamp(p.CenterlineSensitivity, 0, 100)

	binary := Binarize(padImage(img, Padding), threshold)

	// The noise floor is applied once, up front, so that specks neither
	// produce detail paths nor inflate the silhouette.
	regions := removeNoise(binary, FindRegions(binary))

	paths := make([]Path, 0, len(regions)+1)
	if sil := p.silhouette(binary); sil != nil {
		paths = append(paths, *sil)
	}
	if detail > 0 {
		paths = append(paths, p.detailPaths(binary, regions, detail, sensitivity)...)
	}
	return paths
}

// silhouette extracts the outer contour of the whole figure: the cleaned
// binary mask is morphologically closed, the largest boundary polygon by
// shoelace area is selected and optimized as a closed outline. When the
// closed mask splits into several blobs only the largest is cut.
func (p *Processor) silhouette(binary *Mask) *Path {
	contours := TraceContours(Silhouette(binary, DefaultDilateRadius))

	var best []Point
	var bestArea float64
	for _, c := range contours {
		if area := shoelaceArea(c); best == nil || area > bestArea {
			best = c
			bestArea = area
		}
	}
	if best == nil {
		return nil
	}

	path := Optimize(best, Outline)
	if path == nil || len(path.Points) < 3 {
		return nil
	}
	path.Points[len(path.Points)-1] = path.Points[0]
	path.Closed = true
	return path
}

// detailPaths traces the per-region details. Regions surviving the cubic
// area cutoff are either contour-traced as outlines (thick strokes) or
// thinned and chain-traced as centerlines (thin strokes), based on their
// estimated stroke width against the sensitivity boundary.
func (p *Processor) detailPaths(binary *Mask, regions []*Region, detail, sensitivity int) []Path {
	if len(regions) == 0 {
		return nil
	}

	sorted := make([]*Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area() > sorted[j].Area()
	})

	// The cubic response makes the knob perceptually smooth: small decreases
	// near 100 prune only the finest details, values near 0 keep just the
	// dominant shape.
	factor := float64(100-detail) / 100
	areaCutoff := float64(sorted[0].Area()) * factor * factor * factor * 0.02
	fillThreshold := float64(2 + sensitivity*3)

	paths := make([]Path, 0, len(sorted))
	chains := make([][]Point, 0)

	for _, reg := range sorted {
		if float64(reg.Area()) < areaCutoff {
			continue
		}
		if reg.AvgWidth() > fillThreshold {
			if c := TraceRegionBoundary(binary, reg); len(c) > 0 {
				if path := Optimize(c, Outline); path != nil {
					paths = append(paths, *path)
				}
			}
			continue
		}
		chains = append(chains, p.regionChains(reg, binary.Width, binary.Height)...)
	}

	// Chains are merged across regions in one pass before smoothing, so
	// junction breaks introduced by thinning are bridged even when the
	// arms land in different chains.
	for _, chain := range MergeChains(chains, mergeDistance) {
		if path := Optimize(chain, Centerline); path != nil {
			paths = append(paths, *path)
		}
	}
	return paths
}

// regionChains thins a single region and extracts its skeleton chains in
// image coordinates.
func (p *Processor) regionChains(reg *Region, width, height int) [][]Point {
	return TraceChains(Thin(reg.Mask(width, height)))
}

// Vectorize runs the full pipeline over a raw RGBA pixel buffer and renders
// the three layer documents plus statistics. The buffer is row-major with 4
// bytes per pixel, origin top-left. An empty path list is a valid success
// result, not an error.
func (p *Processor) Vectorize(pix []uint8, width, height int) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}
	if len(pix) != width*height*4 {
		return nil, ErrInvalidBuffer
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)

	return p.render(p.Trace(img), width, height), nil
}

// render assembles the layers, the statistics and the three SVG documents
// for the traced paths.
func (p *Processor) render(paths []Path, width, height int) *Result {
	cutCol, engrCol := CutColor, EngraveColor
	if p.CutColor != "" {
		cutCol = p.CutColor
	}
	if p.EngraveColor != "" {
		engrCol = p.EngraveColor
	}

	enc := &svgEncoder{
		width:   width,
		height:  height,
		offset:  Padding,
		cutCol:  cutCol,
		engrCol: engrCol,
	}

	res := &Result{
		Full:    enc.encode(paths, LayerFull),
		Cut:     enc.encode(paths, LayerCut),
		Engrave: enc.encode(paths, LayerEngrave),
		Paths:   paths,
	}
	for _, path := range paths {
		if path.Kind == Outline {
			res.Stats.OutlineCount++
		} else {
			res.Stats.CenterlineCount++
		}
	}
	res.Stats.TotalPaths = len(paths)
	return res
}

// Process decodes an image from the reader, traces it and writes the SVG
// document of the selected layer to the writer. Any registered image format
// (png, jpeg, gif, bmp) is accepted. Oversized inputs are rescaled down to
// MaxDim on the longer side first, so the tracing time stays bounded.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return pkgerr.Wrap(err, "unable to decode the source image")
	}

	img := imgToNRGBA(src)
	if p.MaxDim > 0 {
		dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
		if dx > p.MaxDim || dy > p.MaxDim {
			if dx >= dy {
				img = imaging.Resize(img, p.MaxDim, 0, imaging.Lanczos)
			} else {
				img = imaging.Resize(img, 0, p.MaxDim, imaging.Lanczos)
			}
		}
	}

	res := p.render(p.Trace(img), img.Bounds().Dx(), img.Bounds().Dy())

	var doc string
	switch p.Layer {
	case LayerCut:
		doc = res.Cut
	case LayerEngrave:
		doc = res.Engrave
	default:
		doc = res.Full
	}

	if _, err := io.WriteString(w, doc); err != nil {
		return pkgerr.Wrap(err, "unable to write the vector document")
	}
	return nil
}
