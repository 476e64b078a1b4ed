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

var lineCases = []TestCase{
	{
		Name:     "triangle",
		Path:     polygon(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "triangle_open",
		Path:     "M 10,50 L 32,10 L 54,50",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		Name:     "rectangle",
		Path:     rectangle(10, 10, 54, 54),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "rectangle_relative",
		Path:     "m 10,10 h 44 v 44 h -44 z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "star",
		Path:     star(32, 32, 25),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		// no initial move: the contour starts at the origin
		Name:     "implicit_start",
		Path:     "L 32,10 L 54,50 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "compact_syntax",
		Path:     "M10,50L32,10L54,50Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}
