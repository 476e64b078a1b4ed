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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Command is a single path command.
//
// Which of the fields are used depends on Kind:
//   - MoveTo, LineTo, SmoothQuadTo: End
//   - HLineTo: End.X; VLineTo: End.Y
//   - QuadTo: Ctrl1, End
//   - CubeTo: Ctrl1, Ctrl2, End
//   - SmoothCubeTo: Ctrl2, End
//   - ArcTo: RX, RY, Rotation, LargeArc, Sweep, End
//   - ClosePath: none
//
// For relative commands, all points are offsets from the current point.
// Command values are comparable.
type Command struct {
	Kind Kind
	Mode Mode
	End  vec.Vec2

	Ctrl1 vec.Vec2
	Ctrl2 vec.Vec2

	RX, RY   float64 // non-negative
	Rotation int     // x-axis rotation in degrees
	LargeArc bool
	Sweep    bool
}

// Move returns a MoveTo command.
func Move(m Mode, x, y float64) Command {
	return Command{Kind: MoveTo, Mode: m, End: vec.Vec2{X: x, Y: y}}
}

// Line returns a LineTo command.
func Line(m Mode, x, y float64) Command {
	return Command{Kind: LineTo, Mode: m, End: vec.Vec2{X: x, Y: y}}
}

// HLine returns a horizontal LineTo command.
func HLine(m Mode, x float64) Command {
	return Command{Kind: HLineTo, Mode: m, End: vec.Vec2{X: x}}
}

// VLine returns a vertical LineTo command.
func VLine(m Mode, y float64) Command {
	return Command{Kind: VLineTo, Mode: m, End: vec.Vec2{Y: y}}
}

// Arc returns an elliptical ArcTo command.
// The signs of rx and ry are ignored.
func Arc(m Mode, rx, ry float64, rotation int, largeArc, sweep bool, x, y float64) Command {
	return Command{
		Kind:     ArcTo,
		Mode:     m,
		End:      vec.Vec2{X: x, Y: y},
		RX:       math.Abs(rx),
		RY:       math.Abs(ry),
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	}
}

// Quad returns a quadratic Bézier curve command.
func Quad(m Mode, cx, cy, x, y float64) Command {
	return Command{Kind: QuadTo, Mode: m, Ctrl1: vec.Vec2{X: cx, Y: cy}, End: vec.Vec2{X: x, Y: y}}
}

// SmoothQuad returns a smooth quadratic Bézier curve command.
func SmoothQuad(m Mode, x, y float64) Command {
	return Command{Kind: SmoothQuadTo, Mode: m, End: vec.Vec2{X: x, Y: y}}
}

// Cube returns a cubic Bézier curve command.
func Cube(m Mode, c1x, c1y, c2x, c2y, x, y float64) Command {
	return Command{
		Kind:  CubeTo,
		Mode:  m,
		Ctrl1: vec.Vec2{X: c1x, Y: c1y},
		Ctrl2: vec.Vec2{X: c2x, Y: c2y},
		End:   vec.Vec2{X: x, Y: y},
	}
}

// SmoothCube returns a smooth cubic Bézier curve command.
func SmoothCube(m Mode, c2x, c2y, x, y float64) Command {
	return Command{Kind: SmoothCubeTo, Mode: m, Ctrl2: vec.Vec2{X: c2x, Y: c2y}, End: vec.Vec2{X: x, Y: y}}
}

// Close returns a ClosePath command.
func Close() Command {
	return Command{Kind: ClosePath}
}

// Letter returns the command letter.  Relative commands use lower case.
func (c Command) Letter() byte {
	if c.Mode == Relative && c.Kind != ClosePath {
		return byte(c.Kind) + ('a' - 'A')
	}
	return byte(c.Kind)
}

// String returns the command in canonical text form, using the shortest
// number representation which reads back to the same value.
func (c Command) String() string {
	return c.Text(-1)
}

// Text returns the command in canonical text form.
// If precision is non-negative, all numbers are rounded to that many
// significant digits.
func (c Command) Text(precision int) string {
	return string(c.appendText(nil, precision))
}

func (c Command) appendText(b []byte, prec int) []byte {
	b = append(b, c.Letter())
	switch c.Kind {
	case MoveTo, LineTo, SmoothQuadTo:
		b = appendPair(b, c.End, prec)
	case HLineTo:
		b = append(b, ' ')
		b = appendNumber(b, c.End.X, prec)
	case VLineTo:
		b = append(b, ' ')
		b = appendNumber(b, c.End.Y, prec)
	case QuadTo:
		b = appendPair(b, c.Ctrl1, prec)
		b = appendPair(b, c.End, prec)
	case CubeTo:
		b = appendPair(b, c.Ctrl1, prec)
		b = appendPair(b, c.Ctrl2, prec)
		b = appendPair(b, c.End, prec)
	case SmoothCubeTo:
		b = appendPair(b, c.Ctrl2, prec)
		b = appendPair(b, c.End, prec)
	case ArcTo:
		b = appendPair(b, vec.Vec2{X: c.RX, Y: c.RY}, prec)
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(c.Rotation), 10)
		b = append(b, ' ', flagByte(c.LargeArc), ' ', flagByte(c.Sweep))
		b = appendPair(b, c.End, prec)
	}
	return b
}

func appendPair(b []byte, v vec.Vec2, prec int) []byte {
	b = append(b, ' ')
	b = appendNumber(b, v.X, prec)
	b = append(b, ',')
	return appendNumber(b, v.Y, prec)
}

// appendNumber formats x in positional notation where this is reasonable,
// and in exponent notation for very small and very large magnitudes.
func appendNumber(b []byte, x float64, prec int) []byte {
	if prec >= 0 {
		x, _ = strconv.ParseFloat(strconv.FormatFloat(x, 'g', max(prec, 1), 64), 64)
	}
	if x == 0 {
		return append(b, '0')
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.AppendFloat(b, x, 'f', -1, 64)
	}
	return strconv.AppendFloat(b, x, 'g', -1, 64)
}

func flagByte(f bool) byte {
	if f {
		return '1'
	}
	return '0'
}

// ToAbsolute converts a relative command to absolute coordinates.
//
// The offsets are measured from start if this is non-nil, and from the
// current point of ctx otherwise.  On success, the start point used is
// returned.  Absolute commands and ClosePath are left unchanged.
// If both start and ctx are nil, ErrNoStartPoint is returned and the
// command is not modified.
func (c *Command) ToAbsolute(start *vec.Vec2, ctx *Context) (vec.Vec2, error) {
	if c.Mode == Absolute || c.Kind == ClosePath {
		return vec.Vec2{}, nil
	}

	var p vec.Vec2
	switch {
	case start != nil:
		p = *start
	case ctx != nil:
		p = ctx.Current
	default:
		return vec.Vec2{}, ErrNoStartPoint
	}

	c.translate(p)
	c.Mode = Absolute
	return p, nil
}

// translate shifts all points stored in c by p.
func (c *Command) translate(p vec.Vec2) {
	switch c.Kind {
	case HLineTo:
		c.End.X += p.X
	case VLineTo:
		c.End.Y += p.Y
	case QuadTo:
		c.Ctrl1 = c.Ctrl1.Add(p)
		c.End = c.End.Add(p)
	case CubeTo:
		c.Ctrl1 = c.Ctrl1.Add(p)
		c.Ctrl2 = c.Ctrl2.Add(p)
		c.End = c.End.Add(p)
	case SmoothCubeTo:
		c.Ctrl2 = c.Ctrl2.Add(p)
		c.End = c.End.Add(p)
	case ClosePath:
		// nothing to do
	default:
		c.End = c.End.Add(p)
	}
}

// resolve returns the absolute form of c, starting at the current point of
// ctx, and advances ctx past the command.
//
// The result has one of the kinds MoveTo, LineTo, ArcTo, QuadTo, CubeTo or
// ClosePath: horizontal and vertical lines become LineTo, and smooth curves
// receive their reflected control point.
func (c Command) resolve(ctx *Context) Command {
	if ctx.LastKind == 0 {
		ctx.LastKind = MoveTo
	}

	cur := ctx.Current
	if c.Mode == Relative && c.Kind != ClosePath {
		c.translate(cur)
		c.Mode = Absolute
	}

	kind := c.Kind
	switch kind {
	case HLineTo:
		c.Kind = LineTo
		c.End.Y = cur.Y
	case VLineTo:
		c.Kind = LineTo
		c.End.X = cur.X
	case SmoothQuadTo:
		c.Kind = QuadTo
		c.Ctrl1 = cur
		if ctx.LastKind == QuadTo || ctx.LastKind == SmoothQuadTo {
			c.Ctrl1 = cur.Mul(2).Sub(ctx.LastControl)
		}
	case SmoothCubeTo:
		c.Kind = CubeTo
		c.Ctrl1 = cur
		if ctx.LastKind == CubeTo || ctx.LastKind == SmoothCubeTo {
			c.Ctrl1 = cur.Mul(2).Sub(ctx.LastControl)
		}
	}

	switch c.Kind {
	case QuadTo:
		ctx.LastControl = c.Ctrl1
	case CubeTo:
		ctx.LastControl = c.Ctrl2
	}
	ctx.Current = c.End
	ctx.LastKind = kind
	return c
}

// Flatten appends the vertices of a polyline approximating the command to
// out, and returns the extended slice.  The start vertex of the segment
// (the current point of ctx) is not included.
//
// Flatten advances ctx past the command.  For ClosePath, End must have been
// set to the start of the sub-path by the caller.
func (c Command) Flatten(ctx *Context, out []vec.Vec2) ([]vec.Vec2, error) {
	if ctx == nil {
		return out, ErrNoContext
	}

	start := ctx.Current
	r := c.resolve(ctx)
	tol := ctx.tolerance()
	switch r.Kind {
	case QuadTo:
		out = QuadToCubic(start, r.Ctrl1, r.End).Flatten(tol, out)
	case CubeTo:
		out = CubicBezier{P0: start, P1: r.Ctrl1, P2: r.Ctrl2, P3: r.End}.Flatten(tol, out)
	case ArcTo:
		for _, b := range ArcToBeziers(r, start, ctx.Arcs) {
			out = b.Flatten(tol, out)
		}
	default:
		out = append(out, r.End)
	}
	return out, nil
}
