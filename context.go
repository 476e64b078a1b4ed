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

import "seehuhn.de/go/geom/vec"

// DefaultFlatness is the default curve flattening tolerance, in the units
// of the path coordinates.
const DefaultFlatness = 0.5

// Context is the traversal state for a single pass over a command
// sequence.  It is needed to resolve relative commands and to derive the
// first control point of smooth curves.
//
// The zero value is ready to use and is equivalent to a reset context
// with default flatness.  A LastKind of 0 is treated as MoveTo.
// A Context must not be shared between concurrent traversals.
type Context struct {
	// Current is the current point.
	Current vec.Vec2

	// LastControl is the last control point of the previous curve command.
	LastControl vec.Vec2

	// LastKind is the kind of the previous command.
	LastKind Kind

	// Flatness is the curve flattening tolerance.
	// Values <= 0 select DefaultFlatness.
	Flatness float64

	// Arcs, if non-nil, memoizes the Bézier approximations of arcs.
	Arcs *ArcCache
}

// NewContext returns a reset context with default flatness.
func NewContext(arcs *ArcCache) *Context {
	ctx := &Context{
		Flatness: DefaultFlatness,
		Arcs:     arcs,
	}
	ctx.Reset()
	return ctx
}

// Reset restores the traversal state to its initial value: the current
// point and last control point become the origin and the previous command
// is taken to be a MoveTo.  Flatness and Arcs are kept.
func (ctx *Context) Reset() {
	ctx.Current = vec.Vec2{}
	ctx.LastControl = vec.Vec2{}
	ctx.LastKind = MoveTo
}

func (ctx *Context) tolerance() float64 {
	if ctx.Flatness <= 0 {
		return DefaultFlatness
	}
	return ctx.Flatness
}
