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

var precisionCases = []TestCase{
	{
		Name:     "tiny_circle",
		Path:     circle(32, 32, 0.5, true),
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "subpixel_cubic",
		Path:     "M 10.3,10.7 C 10.4,12.1 11.9,12.2 12.1,10.6 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "exponent_notation",
		Path:     "M 1e1,1e1 L 5.4e1,1e1 L 3.2E1,5e+1 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "small_shape_large_offset",
		Path:     "M 100000.25,100000.25 h 10 v 10 h -10 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "float_precision",
		Path:     "M 10.123456789012,10.987654321098 L 53.1,10.2 L 32.000000000001,53.9 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		// control points coincide with the end points
		Name:     "degenerate_cubic",
		Path:     "M 10,32 C 10,32 54,32 54,32",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
}
