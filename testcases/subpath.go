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

var subpathCases = []TestCase{
	{
		Name:     "two_triangles",
		Path:     polygon(4, 44, 16, 20, 28, 44) + " " + polygon(36, 44, 48, 20, 60, 44),
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, true},
	},
	{
		Name:     "overlapping_rectangles",
		Path:     rectangle(10, 10, 40, 40) + " " + rectangle(24, 24, 54, 54),
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, true},
	},
	{
		Name:     "ring_shape",
		Path:     circle(32, 32, 25, true) + " " + circle(32, 32, 12, false),
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, true},
	},
	{
		Name:     "open_and_closed",
		Path:     "M 10,10 L 54,10 M 10,30 L 54,30 L 32,54 Z",
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{false, true},
	},
	{
		// the contour after a close does not include the sub-path start
		Name:     "continue_after_close",
		Path:     "M 10,10 L 30,10 L 30,30 Z L 10,50 L 30,50 Z",
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, false},
	},
	{
		Name:     "relative_after_close",
		Path:     "M 10,10 l 20,0 l 0,20 z l 0,30 l 20,0 z",
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, false},
	},
	{
		Name:     "relative_moves",
		Path:     "m 10,10 l 10,0 l 0,10 z m 20,0 l 10,0 l 0,10 z m 20,0 l 10,0 l 0,10 z",
		Width:    64,
		Height:   64,
		Subpaths: 3,
		Closed:   []bool{true, true, true},
	},
	{
		Name:     "lone_close",
		Path:     "Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:       "moves_only",
		Path:       "M 10,10 M 20,20",
		Width:      64,
		Height:     64,
		Subpaths:   0,
		Simplified: "",
	},
	{
		Name:     "many_small_shapes",
		Path:     grid(2, 2, 4, 8),
		Width:    64,
		Height:   64,
		Subpaths: 64,
		Closed:   repeat(true, 64),
	},
}
