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

// largeCases contain many vertices or many sub-paths.
var largeCases = []TestCase{
	{
		Name:     "large_circle",
		Path:     circle(256, 256, 200, true),
		Width:    512,
		Height:   512,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "large_ring",
		Path:     circle(256, 256, 200, true) + " " + circle(256, 256, 100, false),
		Width:    512,
		Height:   512,
		Subpaths: 2,
		Closed:   []bool{true, true},
	},
	{
		Name:     "large_grid",
		Path:     grid(16, 16, 12, 20),
		Width:    512,
		Height:   512,
		Subpaths: 400,
		Closed:   repeat(true, 400),
	},
	{
		Name:     "large_zigzag",
		Path:     zigzag(6, 240, 2.5, 30, 200),
		Width:    512,
		Height:   512,
		Subpaths: 1,
		Closed:   []bool{false},
	},
	{
		Name:     "large_clipped",
		Path:     rectangle(-100, -100, 612, 612),
		Width:    512,
		Height:   512,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}
