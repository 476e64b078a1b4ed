// seehuhn.de/go/svgpath - parse and flatten SVG path data
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

// Command genpdf draws the contours of all test cases, for visual
// inspection.  It writes one PDF file per test case, showing the closed
// contours filled in light gray, all contours outlined in black, and the
// vertices marked in dark gray.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/svgpath"
	"seehuhn.de/go/svgpath/testcases"
)

const outDir = "testdata/contours"

// vertexSize is the side length of the vertex markers, in PDF units.
const vertexSize = 0.6

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			g.Go(func() error {
				pdfPath := filepath.Join(outDir, name+".pdf")
				if err := generatePDF(tc, pdfPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// draw the sub-paths the way an SVG renderer would
	f := svgpath.NewFlattener(nil)
	f.SeedAfterClose = true
	contours := f.Contours(svgpath.Parse(tc.Path))

	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; path data assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// draw adds a polygonal path to the current page
	draw := func(d *path.Data) {
		for cmd, pts := range d.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	var closed []svgpath.Contour
	for _, c := range contours {
		if c.Closed() {
			closed = append(closed, c)
		}
	}
	if len(closed) > 0 {
		page.SetFillColor(color.DeviceGray(0.85))
		draw(svgpath.ContoursData(closed))
		page.Fill()
	}

	if len(contours) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.25)
		draw(svgpath.ContoursData(contours))
		page.Stroke()

		page.SetFillColor(color.DeviceGray(0.4))
		for _, c := range contours {
			for _, v := range c {
				page.Rectangle(v.X-vertexSize/2, v.Y-vertexSize/2, vertexSize, vertexSize)
			}
		}
		page.Fill()
	}

	return page.Close()
}
