package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/lasertrace"
	"github.com/esimov/lasertrace/utils"
)

const helpBanner = `
┬  ┌─┐┌─┐┌─┐┬─┐┌┬┐┬─┐┌─┐┌─┐┌─┐
│  ├─┤└─┐├┤ ├┬┘ │ ├┬┘├─┤│  ├┤
┴─┘┴ ┴└─┘└─┘┴└─ ┴ ┴└─┴ ┴└─┘└─┘

Raster line art to laser-ready vector tracer.
    Version: %s

`

// pipeName indicates that stdin/stdout is being used as file names.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", pipeName, "Source image, directory or URL")
	destination  = flag.String("out", pipeName, "Destination SVG file or directory")
	detail       = flag.Int("detail", lasertrace.DefaultParams.DetailLevel, "Detail level (0-100)")
	sensitivity  = flag.Int("sensitivity", lasertrace.DefaultParams.CenterlineSensitivity, "Centerline sensitivity (0-100)")
	threshold    = flag.Int("threshold", lasertrace.DefaultThreshold, "Binarization luminance threshold (0-255)")
	layer        = flag.String("layer", "full", "Layer to emit: full, cut or engrave")
	maxDim       = flag.Int("maxdim", 0, "Rescale larger inputs down to this bound (0 disables)")
	cutColor     = flag.String("cut-color", lasertrace.CutColor, "Cut layer stroke color")
	engraveColor = flag.String("engrave-color", lasertrace.EngraveColor, "Engrave layer stroke color")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	outLayer, err := lasertrace.ParseLayer(*layer)
	if err != nil {
		flag.Usage()
		log.Fatal(utils.DecorateText(fmt.Sprintf("\n%v", err), utils.ErrorMessage))
	}

	proc := &lasertrace.Processor{
		DetailLevel:           *detail,
		CenterlineSensitivity: *sensitivity,
		Threshold:             *threshold,
		Layer:                 outLayer,
		MaxDim:                *maxDim,
		// Round-trip the colors through the hex parser so shorthand
		// notations like #0f0 reach the document in canonical form.
		CutColor:     utils.RGBAToHex(utils.HexToRGBA(*cutColor)),
		EngraveColor: utils.RGBAToHex(utils.HexToRGBA(*engraveColor)),
	}

	proc.Execute(&lasertrace.Source{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
}
