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

var curveCases = []TestCase{
	{
		Name:     "quadratic",
		Path:     "M 10,50 Q 32,10 54,50 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "quadratic_deep",
		Path:     "M 10,50 Q 32,-30 54,50 Z", // control point far from chord
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "quadratic_relative",
		Path:     "m 10,50 q 22,-40 44,0 z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic",
		Path:     "M 10,50 C 20,10 44,10 54,50 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic_relative",
		Path:     "M 10,50 c 10,-40 34,-40 44,0 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic_open",
		Path:     "M 10,50 C 20,10 44,10 54,50",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		Name:     "cubic_loop",
		Path:     "M 10,40 C 70,0 -6,0 54,40 Z", // self-intersecting
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic_s_shape",
		Path:     "M 10,32 C 32,0 32,64 54,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic_circle",
		Path:     cubicCircle(32, 32, 25),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}
