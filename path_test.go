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

package svgpath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathEdit(t *testing.T) {
	p := NewPath()
	p.Append(Move(Absolute, 1, 1), Line(Absolute, 2, 2))

	if err := p.Insert(1, HLine(Relative, 5)); err != nil {
		t.Fatal(err)
	}
	if err := p.Insert(p.Len(), Close()); err != nil {
		t.Fatal(err)
	}
	if err := p.Set(0, Move(Absolute, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if got, want := p.String(), "M 0,0 h 5 L 2,2 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if !p.Remove(2) {
		t.Error("Remove(2) failed")
	}
	if c, ok := p.Command(1); !ok || c != HLine(Relative, 5) {
		t.Errorf("Command(1) = %v, %t", c, ok)
	}
	if got, want := p.String(), "M 0,0 h 5 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	p.RemoveAll()
	if p.Len() != 0 || p.String() != "" {
		t.Errorf("path not empty after RemoveAll: %q", p)
	}
}

func TestPathIndexErrors(t *testing.T) {
	p := Parse("M 1,2 L 3,4")
	before := p.String()

	for _, i := range []int{-1, 2, 10} {
		if err := p.Set(i, Close()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d): got error %v", i, err)
		}
		if p.Remove(i) {
			t.Errorf("Remove(%d) succeeded", i)
		}
		if _, ok := p.Command(i); ok {
			t.Errorf("Command(%d) succeeded", i)
		}
	}
	for _, i := range []int{-1, 3} {
		if err := p.Insert(i, Close()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Insert(%d): got error %v", i, err)
		}
		if _, err := p.InsertText(i, "Z"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("InsertText(%d): got error %v", i, err)
		}
		if _, err := p.InsertArray(i, [][]any{{"Z"}}); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("InsertArray(%d): got error %v", i, err)
		}
	}

	if after := p.String(); after != before {
		t.Errorf("path changed from %q to %q", before, after)
	}
}

func TestPathInsertText(t *testing.T) {
	p := Parse("M 0,0 Z")
	n, err := p.InsertText(1, "L 1,0 X 5 L 1,1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("inserted %d commands, want 2", n)
	}
	if n := p.AppendText("m 1,1 !"); n != 1 {
		t.Errorf("appended %d commands, want 1", n)
	}
	n, err = p.InsertArray(0, [][]any{{"M", 5, 5}, {"L"}})
	if err != nil || n != 1 {
		t.Errorf("InsertArray: %d, %v", n, err)
	}
	if n := p.AppendArray([][]any{{"l", 1, 1}}); n != 1 {
		t.Errorf("appended %d commands, want 1", n)
	}

	want := "M 5,5 M 0,0 L 1,0 L 1,1 Z m 1,1 l 1,1"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathAll(t *testing.T) {
	p := Parse("M 1,2 L 3,4 H 5 Z")

	var kinds []Kind
	for i, c := range p.All() {
		if c2, _ := p.Command(i); c2 != c {
			t.Errorf("%d: %v != %v", i, c, c2)
		}
		kinds = append(kinds, c.Kind)
	}
	if d := cmp.Diff([]Kind{MoveTo, LineTo, HLineTo, ClosePath}, kinds); d != "" {
		t.Errorf("unexpected kinds (-want +got):\n%s", d)
	}

	count := 0
	for range p.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iteration did not stop: %d", count)
	}
}

func TestPathClone(t *testing.T) {
	p := Parse("M 1,2 L 3,4")
	p.Flatness = 0.1
	ac := p.ArcCache()

	q := p.Clone()
	if q.Flatness != 0.1 || q.ArcCache() != ac {
		t.Error("clone does not share settings")
	}
	q.Append(Close())
	if err := q.Set(0, Move(Absolute, 0, 0)); err != nil {
		t.Fatal(err)
	}

	if got := p.String(); got != "M 1,2 L 3,4" {
		t.Errorf("original modified: %q", got)
	}
	if got := q.String(); got != "M 0,0 L 3,4 Z" {
		t.Errorf("clone: %q", got)
	}

	cmds := p.Commands()
	cmds[0] = Close()
	if c, _ := p.Command(0); c.Kind != MoveTo {
		t.Error("Commands does not return a copy")
	}
}

func TestPathArcCache(t *testing.T) {
	p := NewPath()
	ac := p.ArcCache()
	if ac == nil || p.ArcCache() != ac {
		t.Fatal("arc cache not retained")
	}
	shared := NewArcCache(10)
	p.SetArcCache(shared)
	if p.ArcCache() != shared {
		t.Error("SetArcCache has no effect")
	}
}

func TestPathText(t *testing.T) {
	p := Parse("M 1.23456,2.5 L 100.26,0.000123456")
	cases := []struct {
		prec int
		want string
	}{
		{-1, "M 1.23456,2.5 L 100.26,0.000123456"},
		{2, "M 1.2,2.5 L 100,0.00012"},
		{4, "M 1.235,2.5 L 100.3,0.0001235"},
	}
	for _, tc := range cases {
		if got := p.Text(tc.prec); got != tc.want {
			t.Errorf("precision %d: got %q, want %q", tc.prec, got, tc.want)
		}
	}
}

func TestPathJSON(t *testing.T) {
	p := Parse("M 10,20 l 5,0 A 5,5 30 1 0 1,2 Z")
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `[["M",10,20],["l",5,0],["A",5,5,30,1,0,1,2],["Z"]]`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var q Path
	if err := json.Unmarshal(data, &q); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p.Commands(), q.Commands()); d != "" {
		t.Errorf("array form round trip (-want +got):\n%s", d)
	}

	var r Path
	if err := json.Unmarshal([]byte(` "M 10,20 l 5,0 A 5,5 30 1 0 1,2 Z"`), &r); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p.Commands(), r.Commands()); d != "" {
		t.Errorf("text form (-want +got):\n%s", d)
	}

	var s Path
	in := `[["M",10,20],["l",5,0],["A",5,5,30,true,false,1,2],["Q",1],["z"]]`
	if err := json.Unmarshal([]byte(in), &s); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p.Commands(), s.Commands()); d != "" {
		t.Errorf("boolean flags (-want +got):\n%s", d)
	}

	if err := json.Unmarshal([]byte(`{"M":1}`), &s); err == nil {
		t.Error("object accepted")
	}
}

func TestPathJSONField(t *testing.T) {
	type shape struct {
		Name string `json:"name"`
		Path *Path  `json:"path"`
	}
	var sh shape
	in := `{"name":"tri","path":"M 0,0 L 10,0 L 5,5 Z"}`
	if err := json.Unmarshal([]byte(in), &sh); err != nil {
		t.Fatal(err)
	}
	if sh.Path == nil || sh.Path.Len() != 4 {
		t.Fatalf("unexpected path %v", sh.Path)
	}
	if got := len(sh.Path.Contours()); got != 1 {
		t.Errorf("got %d contours, want 1", got)
	}
}
