/*
Package lasertrace converts raster images of line art into laser-ready vector
drawings composed of two layers: a cut layer of closed outer contours and an
engrave layer of single-pixel-wide centerlines extracted from thick strokes.

Unlike general purpose raster tracers which emit paired boundary curves around
each stroke, the package emits one polyline per stroke, eliminating double-cut
passes on thermal cutting machines.

The package provides a command line interface, supporting various flags for the
different tracing operations. To check the supported commands type:

	$ lasertrace --help

In case you wish to integrate the API in a self constructed environment here is
a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/lasertrace"
	)

	func main() {
		p := &lasertrace.Processor{
			DetailLevel:           50,
			CenterlineSensitivity: 50,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Error tracing image: %s", err.Error())
		}
	}
*/
package lasertrace
