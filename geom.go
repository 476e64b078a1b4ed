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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Data converts the path into a geom path.  All coordinates are made
// absolute, horizontal and vertical lines become general lines, smooth
// curves receive their derived control points, and arcs are replaced by
// cubic Bézier curves.  The path is not simplified.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	if len(p.cmds) == 0 {
		return d
	}

	ctx := NewContext(nil)
	var subpathStart vec.Vec2
	inSubpath := false
	for _, c := range p.cmds {
		start := ctx.Current
		if c.Kind == ClosePath {
			c.End = subpathStart
		}
		r := c.resolve(ctx)

		if r.Kind != MoveTo && !inSubpath {
			d = d.MoveTo(start)
			subpathStart = start
			inSubpath = true
		}
		switch r.Kind {
		case MoveTo:
			d = d.MoveTo(r.End)
			subpathStart = r.End
			inSubpath = true
		case LineTo:
			d = d.LineTo(r.End)
		case QuadTo:
			d = d.QuadTo(r.Ctrl1, r.End)
		case CubeTo:
			d = d.CubeTo(r.Ctrl1, r.Ctrl2, r.End)
		case ArcTo:
			for _, b := range ArcToBeziers(r, start, p.arcs) {
				d = d.CubeTo(b.P1, b.P2, b.P3)
			}
		case ClosePath:
			d = d.Close()
			inSubpath = false
		}
	}
	return d
}

// FromData converts a geom path into a path of absolute commands.
func FromData(d path.Path) *Path {
	p := NewPath()
	for cmd, pts := range d {
		switch cmd {
		case path.CmdMoveTo:
			p.cmds = append(p.cmds, Command{Kind: MoveTo, End: pts[0]})
		case path.CmdLineTo:
			p.cmds = append(p.cmds, Command{Kind: LineTo, End: pts[0]})
		case path.CmdQuadTo:
			p.cmds = append(p.cmds, Command{Kind: QuadTo, Ctrl1: pts[0], End: pts[1]})
		case path.CmdCubeTo:
			p.cmds = append(p.cmds, Command{Kind: CubeTo, Ctrl1: pts[0], Ctrl2: pts[1], End: pts[2]})
		case path.CmdClose:
			p.cmds = append(p.cmds, Close())
		}
	}
	return p
}

// ContoursData returns a polygonal geom path through the vertices of the
// given contours.  Closed contours end with a close command.
func ContoursData(cs []Contour) *path.Data {
	d := &path.Data{}
	for _, c := range cs {
		if len(c) == 0 {
			continue
		}
		d = d.MoveTo(c[0])
		n := len(c)
		if c.Closed() {
			n--
		}
		for _, v := range c[1:n] {
			d = d.LineTo(v)
		}
		if c.Closed() {
			d = d.Close()
		}
	}
	return d
}
