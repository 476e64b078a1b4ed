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

// smoothCases exercise the reflection of control points by T and S.
var smoothCases = []TestCase{
	{
		Name:     "quadratic_chain",
		Path:     "M 4,32 Q 14,12 24,32 T 44,32 T 60,32",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		// no preceding quadratic: the control point is the current point
		Name:     "quadratic_after_line",
		Path:     "M 4,32 L 10,20 T 60,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "quadratic_chain_relative",
		Path:     "M 4,32 q 10,-20 20,0 t 20,0 t 16,0",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		Name:     "cubic_chain",
		Path:     "M 4,40 C 10,10 20,10 32,32 S 54,54 60,24",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		// S after Q does not reflect the quadratic control point
		Name:     "cubic_after_quadratic",
		Path:     "M 4,40 Q 20,4 32,32 S 54,54 60,24 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "cubic_chain_relative",
		Path:     "M 4,40 c 6,-30 16,-30 28,-8 s 22,22 28,-8 z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}
