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

// simplifyCases contain redundant move and close commands.
var simplifyCases = []TestCase{
	{
		Name:       "relative_move_run",
		Path:       "M 100,100 l 100,0 m 20,20 m 30,50 m 40,10 l 0,100",
		Width:      300,
		Height:     400,
		Subpaths:   2,
		Closed:     []bool{false, false},
		Simplified: "M 100,100 l 100,0 m 90,80 l 0,100",
	},
	{
		Name:       "relative_after_absolute_move",
		Path:       "M 100,100 l 100,0 M 20,20 m 30,50 l 0,100",
		Width:      300,
		Height:     400,
		Subpaths:   2,
		Closed:     []bool{false, false},
		Simplified: "M 100,100 l 100,0 M 50,70 l 0,100",
	},
	{
		Name:       "absolute_move_run",
		Path:       "M 100,100 l 100,0 M 20,20 M 30,50 m 30,50 M 80,90 l 0,100",
		Width:      300,
		Height:     400,
		Subpaths:   2,
		Closed:     []bool{false, false},
		Simplified: "M 100,100 l 100,0 M 80,90 l 0,100",
	},
	{
		Name:       "close_run",
		Path:       "M 100,100 l 100,0 Z Z l 0,100 Z l 0,100",
		Width:      300,
		Height:     400,
		Subpaths:   3,
		Closed:     []bool{true, false, false},
		Simplified: "M 100,100 l 100,0 Z l 0,100 Z l 0,100",
	},
	{
		Name:       "nop_moves",
		Path:       "M 100,100 L 100,0 M 100,0 L 200,100 m 0,0 l 0,100 m 0,100 l 0,100 M 0,100 l 0,100",
		Width:      300,
		Height:     400,
		Subpaths:   3,
		Closed:     []bool{false, false, false},
		Simplified: "M 100,100 L 100,0 L 200,100 l 0,100 m 0,100 l 0,100 M 0,100 l 0,100",
	},
	{
		Name:       "trailing_moves",
		Path:       "M 100,100 M 20,20 m 30,50 m 60,80 M 0,100 m 30,50 l 100,0 M 20,20 m 30,50 m 60,80 M 0,100 m 30,50",
		Width:      300,
		Height:     400,
		Subpaths:   1,
		Closed:     []bool{false},
		Simplified: "M 30,150 l 100,0",
	},
	{
		Name:       "mixed",
		Path:       "M 100,100 l 100,0 m 20,20 M 30,50 l 0,100 Z Z",
		Width:      300,
		Height:     400,
		Subpaths:   2,
		Closed:     []bool{false, true},
		Simplified: "M 100,100 l 100,0 M 30,50 l 0,100 Z",
	},
}
