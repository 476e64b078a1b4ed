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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var benchSizes = []int{20, 200, 2000}

// oPathText returns an "O" shape: an outer circle drawn clockwise and an
// inner circle drawn counter-clockwise, each made of two arcs.
func oPathText(size int) string {
	c := float64(size) / 2
	outer := float64(size) * 0.45
	inner := float64(size) * 0.30
	circle := func(r float64, sweep int) string {
		return fmt.Sprintf("M %g,%g A %g,%g 0 0 %d %g,%g A %g,%g 0 0 %d %g,%g Z",
			c+r, c, r, r, sweep, c-r, c, r, r, sweep, c+r, c)
	}
	return circle(outer, 1) + " " + circle(inner, 0)
}

// BenchmarkContoursO flattens an "O" shape with a reused Flattener.
func BenchmarkContoursO(b *testing.B) {
	for _, size := range benchSizes {
		p := Parse(oPathText(size))
		for _, cached := range []bool{false, true} {
			name := fmt.Sprintf("%dx%d", size, size)
			if cached {
				name += "/cached"
			}
			b.Run(name, func(b *testing.B) {
				var arcs *ArcCache
				if cached {
					arcs = NewArcCache(0)
				}
				f := NewFlattener(arcs)

				b.ReportAllocs()
				for b.Loop() {
					f.Contours(p)
				}
			})
		}
	}
}

// BenchmarkFillO flattens an "O" shape and fills the contours with
// x/image/vector.
func BenchmarkFillO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := Parse(oPathText(size))
			f := NewFlattener(NewArcCache(0))
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for _, c := range f.Contours(p) {
					r.MoveTo(float32(c[0].X), float32(c[0].Y))
					for _, v := range c[1:] {
						r.LineTo(float32(v.X), float32(v.Y))
					}
					r.ClosePath()
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkVectorO fills the same shape, letting x/image/vector flatten the
// curves.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			d := Parse(oPathText(size)).Data()
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addData(r, d.Iter())
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	s := oPathText(200) + " l 10,20 h -5.5 v 3 q 1,2 3,4 t 5,6 c 1,2 3,4 5,6 s 7,8 9,10"
	b.SetBytes(int64(len(s)))
	b.ReportAllocs()
	for b.Loop() {
		ParseCommands(s)
	}
}

func BenchmarkText(b *testing.B) {
	p := Parse(oPathText(200) + " l 10.25,20 h -5.5 v 3e-8 q 1,2 3,4 t 5,6 c 1,2 3,4 5,6 s 7,8 9,10")
	b.ReportAllocs()
	for b.Loop() {
		_ = p.String()
	}
}

func BenchmarkSimplify(b *testing.B) {
	cmds := ParseCommands("M 100,100 l 100,0 m 20,20 M 30,50 m 5,5 l 0,100 Z Z m 0,0 M 1,1 " +
		"L 5,5 M 5,5 L 6,6 Z Z Z M 50,50")
	b.ReportAllocs()
	for b.Loop() {
		Simplify(cmds)
	}
}
