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

package testcases

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TestCase describes a path together with the expected result of contour
// extraction.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Path   string // path data in text form
	Width  int    // width of the drawing area
	Height int    // height of the drawing area

	// Subpaths is the number of contours after simplification.
	Subpaths int

	// Closed lists, for every contour, whether it is closed.
	Closed []bool

	// Simplified, if non-empty, is the expected text form of the path
	// after simplification.
	Simplified string
}

// num formats a coordinate for use in path data.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// pt formats a coordinate pair.
func pt(x, y float64) string {
	return num(x) + "," + num(y)
}

// repeat returns n copies of closed.
func repeat(closed bool, n int) []bool {
	res := make([]bool, n)
	for i := range res {
		res[i] = closed
	}
	return res
}

// polygon builds a closed polygon through the given vertices.
func polygon(xy ...float64) string {
	var b strings.Builder
	for i := 0; i+1 < len(xy); i += 2 {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(pt(xy[i], xy[i+1]))
	}
	b.WriteString(" Z")
	return b.String()
}

// rectangle builds an axis-aligned rectangle using H and V commands.
func rectangle(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf("M %s H %s V %s H %s Z", pt(x1, y1), num(x2), num(y2), num(x1))
}

// circle builds a circle from two arcs.  If clockwise is false, the
// circle is traced in the opposite direction.
func circle(cx, cy, r float64, clockwise bool) string {
	sweep := 1
	if !clockwise {
		sweep = 0
	}
	return fmt.Sprintf("M %s A %s 0 0 %d %s A %s 0 0 %d %s Z",
		pt(cx+r, cy),
		pt(r, r), sweep, pt(cx-r, cy),
		pt(r, r), sweep, pt(cx+r, cy))
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// cubicCircle builds a circle from four cubic Bézier curves.
func cubicCircle(cx, cy, r float64) string {
	k := kappa * r
	return fmt.Sprintf("M %s C %s %s %s C %s %s %s C %s %s %s C %s %s %s Z",
		pt(cx+r, cy),
		pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r),
		pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy),
		pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r),
		pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
}

// star builds a five-pointed star (self-intersecting).
func star(cx, cy, r float64) string {
	var xy []float64
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		xy = append(xy, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(xy...)
}

// grid builds n×n squares of the given size, each as its own closed
// sub-path, using relative commands.
func grid(x0, y0, size float64, n int) string {
	var parts []string
	step := 2 * size
	for i := range n {
		for j := range n {
			x := x0 + float64(j)*step
			y := y0 + float64(i)*step
			parts = append(parts, fmt.Sprintf("M %s h %s v %s h %s z",
				pt(x, y), num(size), num(size), num(-size)))
		}
	}
	return strings.Join(parts, " ")
}

// zigzag builds an open polyline with n relative line segments.
func zigzag(x0, y0, dx, dy float64, n int) string {
	parts := []string{"M " + pt(x0, y0)}
	for i := range n {
		sign := 1.0
		if i%2 == 1 {
			sign = -1
		}
		parts = append(parts, "l "+pt(dx, sign*dy))
	}
	return strings.Join(parts, " ")
}
