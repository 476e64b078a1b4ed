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

var arcCases = []TestCase{
	{
		Name:     "circle",
		Path:     circle(32, 32, 25, true),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "ellipse_rotated",
		Path:     "M 12,32 A 24,12 30 1 1 52,32 A 24,12 30 1 1 12,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		// the radii are too small and get scaled up to a half circle
		Name:     "radii_too_small",
		Path:     "M 10,32 A 5,5 0 0 1 54,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "large_arc",
		Path:     "M 20,20 A 15,15 0 1 0 44,20 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "small_arc",
		Path:     "M 20,20 A 15,15 0 0 0 44,20 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "relative",
		Path:     "M 10,32 a 22,22 0 0 0 44,0 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "pie",
		Path:     "M 32,32 L 57,32 A 25,25 0 0 1 32,57 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		// a zero radius turns the arc into a straight line
		Name:     "zero_radius",
		Path:     "M 10,10 A 0,10 0 0 1 54,54 L 10,54 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		// an arc ending at its start point is omitted
		Name:     "degenerate",
		Path:     "M 32,32 A 10,10 0 0 1 32,32 L 50,50",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		Name:     "negative_radii",
		Path:     "M 10,32 A -22,-22 0 0 1 54,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}
