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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contour is the polyline approximating one sub-path.
type Contour []vec.Vec2

// Closed reports whether the first and last vertex of the contour
// coincide.
func (c Contour) Closed() bool {
	return len(c) > 1 && c[0] == c[len(c)-1]
}

// BBox returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty contour.
func (c Contour) BBox() rect.Rect {
	if len(c) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, v := range c {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Flattener converts paths into contours.
// The caller creates one instance and reuses it for many paths.
//
// A Flattener never modifies the paths it is given, so that several
// Flatteners can process the same path concurrently.  A single Flattener
// must not be used concurrently.
type Flattener struct {
	// Flatness is the curve flattening tolerance.
	// Values <= 0 select DefaultFlatness.
	Flatness float64

	// Arcs, if non-nil, memoizes the Bézier approximations of arcs.
	Arcs *ArcCache

	// SeedAfterClose makes a contour which follows a ClosePath without an
	// intervening MoveTo start at the sub-path start point, as an SVG
	// renderer draws it.  By default such a contour starts empty.
	SeedAfterClose bool

	ctx  Context
	cmds []Command // simplified copy of the current path
}

// NewFlattener returns a Flattener with default flatness which uses the
// given arc cache.  The cache may be nil.
func NewFlattener(arcs *ArcCache) *Flattener {
	return &Flattener{
		Flatness: DefaultFlatness,
		Arcs:     arcs,
	}
}

// Contours returns one polyline for every sub-path of the simplified
// path.  Curves and arcs are approximated by line segments.
func (f *Flattener) Contours(p *Path) []Contour {
	f.cmds = simplify(append(f.cmds[:0], p.cmds...))
	res := f.contours(f.cmds)
	clear(f.cmds)
	return res
}

// contours walks a simplified command sequence.
func (f *Flattener) contours(cmds []Command) []Contour {
	if len(cmds) == 0 {
		return nil
	}

	ctx := &f.ctx
	ctx.Flatness = f.Flatness
	ctx.Arcs = f.Arcs
	ctx.Reset()

	var res []Contour
	var cur Contour
	if cmds[0].Kind != MoveTo {
		cur = Contour{ctx.Current}
	}
	var subpathStart vec.Vec2
	for _, c := range cmds {
		if c.Kind == MoveTo || ctx.LastKind == ClosePath {
			if len(cur) > 0 {
				res = append(res, cur)
			}
			cur = nil
			if c.Kind != MoveTo && f.SeedAfterClose {
				cur = Contour{ctx.Current}
			}
		}
		if c.Kind == ClosePath {
			c.End = subpathStart
		}

		// ctx is not nil, so Flatten cannot fail
		cur, _ = c.Flatten(ctx, cur)

		if c.Kind == MoveTo {
			subpathStart = ctx.Current
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

// Contours simplifies the path and returns one polyline for every
// sub-path.  Arcs are flattened using the arc cache of the path.
func (p *Path) Contours() []Contour {
	p.Simplify()
	f := Flattener{
		Flatness: p.Flatness,
		Arcs:     p.ArcCache(),
	}
	return f.contours(p.cmds)
}
