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

// Command export writes the test cases, together with the extracted
// contours, to JSON for use by other implementations.
// Run from the svgpath module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/svgpath"
	"seehuhn.de/go/svgpath/testcases"
)

func main() {
	var out struct {
		Flatness  float64        `json:"flatness"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Flatness = svgpath.DefaultFlatness

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Text       string         `json:"text"`
	Simplified string         `json:"simplified"`
	Array      *svgpath.Path  `json:"array"`
	Subpaths   int            `json:"subpaths"`
	Contours   [][][2]float64 `json:"contours"`
	Closed     []bool         `json:"closed"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	p := svgpath.Parse(tc.Path)
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Text:   p.String(),
		Array:  p.Clone(),
	}

	contours := p.Contours()
	jtc.Simplified = p.String()
	jtc.Subpaths = p.NumSubpaths()
	jtc.Contours = make([][][2]float64, len(contours))
	jtc.Closed = make([]bool, len(contours))
	for i, c := range contours {
		pts := make([][2]float64, len(c))
		for j, v := range c {
			pts[j] = [2]float64{v.X, v.Y}
		}
		jtc.Contours[i] = pts
		jtc.Closed[i] = c.Closed()
	}
	return jtc
}
