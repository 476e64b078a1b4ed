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

package svgpath

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxSplits limits the recursion depth of CubicBezier.Flatten.
// A single curve is never split into more than 2^maxSplits line segments.
const maxSplits = 9

// CubicBezier is a cubic Bézier curve with start point P0, control points
// P1 and P2, and end point P3.
type CubicBezier struct {
	P0, P1, P2, P3 vec.Vec2
}

// QuadToCubic returns the cubic Bézier curve which traces the same curve
// as the quadratic Bézier curve from p0 to p3 with control point c.
func QuadToCubic(p0, c, p3 vec.Vec2) CubicBezier {
	c2 := c.Mul(2.0 / 3)
	return CubicBezier{
		P0: p0,
		P1: p0.Mul(1.0 / 3).Add(c2),
		P2: p3.Mul(1.0 / 3).Add(c2),
		P3: p3,
	}
}

// At returns the point on the curve at parameter t in [0, 1].
func (b CubicBezier) At(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return b.P0.Mul(omt2 * omt).Add(b.P1.Mul(3 * omt2 * t)).Add(b.P2.Mul(3 * omt * t2)).Add(b.P3.Mul(t2 * t))
}

// Split divides the curve at t = 1/2, using de Casteljau's algorithm.
func (b CubicBezier) Split() (CubicBezier, CubicBezier) {
	p01 := midpoint(b.P0, b.P1)
	p12 := midpoint(b.P1, b.P2)
	p23 := midpoint(b.P2, b.P3)
	p012 := midpoint(p01, p12)
	p123 := midpoint(p12, p23)
	m := midpoint(p012, p123)
	return CubicBezier{P0: b.P0, P1: p01, P2: p012, P3: m},
		CubicBezier{P0: m, P1: p123, P2: p23, P3: b.P3}
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Flatten appends the vertices of a polyline approximating the curve to
// out, excluding the start point P0, and returns the extended slice.
//
// The curve is subdivided adaptively until the flatness measure of every
// piece is below tol, or until the maximum subdivision depth is reached.  If tol <= 0, DefaultFlatness is used.
func (b CubicBezier) Flatten(tol float64, out []vec.Vec2) []vec.Vec2 {
	if tol <= 0 {
		tol = DefaultFlatness
	}

	var stack [maxSplits + 1]CubicBezier
	var levels [maxSplits + 1]int
	stack[0] = b
	levels[0] = maxSplits
	top := 0
	for top >= 0 {
		c := stack[top]
		lvl := levels[top]
		if lvl == 0 || c.isFlat(tol) {
			out = append(out, c.P3)
			top--
			continue
		}

		// The second half stays in the current slot and the first half is
		// processed next, so that vertices are emitted in curve order.
		first, second := c.Split()
		stack[top], levels[top] = second, lvl-1
		top++
		stack[top], levels[top] = first, lvl-1
	}
	return out
}

// isFlat reports whether the control points are close enough to the chord
// from P0 to P3.
func (b CubicBezier) isFlat(tol float64) bool {
	v := b.P3.Sub(b.P0)

	// For long chords d is not normalized by the chord length, so the
	// test gets stricter as the chord grows.
	var d float64
	if math.Abs(v.X)+math.Abs(v.Y) > 1 {
		// cross products of the chord with the control point offsets
		d = math.Abs(v.X*(b.P0.Y-b.P1.Y)-v.Y*(b.P0.X-b.P1.X)) +
			math.Abs(v.X*(b.P0.Y-b.P2.Y)-v.Y*(b.P0.X-b.P2.X))
	} else {
		d = math.Abs(b.P0.Y-b.P1.Y) + math.Abs(b.P0.X-b.P1.X) +
			math.Abs(b.P0.Y-b.P2.Y) + math.Abs(b.P0.X-b.P2.X)
	}
	return d < tol
}
