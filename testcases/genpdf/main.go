// seehuhn.de/go/writegraph - render drawings of planar graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf generates reference images for the gallery tests.
//
// Every shape which the renderer would paint for a test case is written,
// white on black, to a PDF file.  Ghostscript then renders the PDF into a
// grayscale PNG, whose pixel values are the expected coverage.  Vertex
// labels are not included.
package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/writegraph"
	"seehuhn.de/go/writegraph/canvas"
	"seehuhn.de/go/writegraph/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// collectOps returns the shapes painted for tc, in painting order.
func collectOps(tc testcases.TestCase) ([]*canvas.Op, error) {
	opts := tc.Options
	opts.ShowNumbers = false

	var ops []*canvas.Op
	c := canvas.New(opts.Width, opts.Height)
	c.Observe = func(op *canvas.Op) {
		ops = append(ops, op)
	}
	err := writegraph.Draw(c, tc.Graph, opts, log.New(io.Discard))
	if err != nil {
		return nil, err
	}
	return ops, nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	ops, err := collectOps(tc)
	if err != nil {
		return err
	}

	width := float64(tc.Options.Width)
	height := float64(tc.Options.Height)
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background: 0 means no coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// image coordinates have the origin in the top-left corner
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	for _, op := range ops {
		if op.Stroke {
			page.SetLineWidth(op.Width)
			page.SetLineCap(op.Cap)
		}

		for cmd, pts := range op.Path.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		switch {
		case op.Stroke:
			page.Stroke()
		case op.EvenOdd:
			page.FillEvenOdd()
		default:
			page.Fill()
		}
	}

	return page.Close()
}

// renderPNG converts a PDF file into an 8-bit grayscale PNG at 72 DPI,
// so that one PDF unit is one pixel.
func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
