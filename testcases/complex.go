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

import "fmt"

var complexCases = []TestCase{
	{
		Name: "all_commands",
		Path: "M 20,10 l 100,100 h 50 v -50 a 200,100 15 1 1 -50,100 Z" +
			"M 100,100 l 0,100 l100,-100 l 0,100 Z" +
			"M 10,300 q 100,50 150,0 t 200,50c 150,50 -230,120 150,200 s -200,80 -330,-300 Z",
		Width:    600,
		Height:   600,
		Subpaths: 3,
		Closed:   []bool{true, true, true},
	},
	{
		Name:     "glyph_like",
		Path:     roundedRect(8, 8, 48, 48, 10) + " " + roundedRect(20, 20, 24, 24, 6),
		Width:    64,
		Height:   64,
		Subpaths: 2,
		Closed:   []bool{true, true},
	},
	{
		Name:     "heart",
		Path:     "M 32,56 C 4,36 8,8 32,20 C 56,8 60,36 32,56 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "figure_eight",
		Path:     "M 32,32 C 60,4 60,60 32,32 C 4,4 4,60 32,32 Z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
	{
		Name:     "mixed_relative_absolute",
		Path:     "M 8,56 l 8,-16 Q 24,24 32,40 t 16,0 a 8,8 0 0 1 8,8 V 56 h -48 z",
		Width:    64,
		Height:   64,
		Subpaths: 1,
		Closed:   []bool{true},
	},
}

// roundedRect builds a rectangle with rounded corners, using arcs for the
// corners.
func roundedRect(x, y, w, h, r float64) string {
	return fmt.Sprintf("M %s H %s A %s 0 0 1 %s V %s A %s 0 0 1 %s H %s A %s 0 0 1 %s V %s A %s 0 0 1 %s Z",
		pt(x+r, y), num(x+w-r),
		pt(r, r), pt(x+w, y+r), num(y+h-r),
		pt(r, r), pt(x+w-r, y+h), num(x+r),
		pt(r, r), pt(x, y+h-r), num(y+r),
		pt(r, r), pt(x+r, y))
}
