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
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Path is an ordered sequence of path commands.
//
// The methods of Path which modify the path must not be called
// concurrently with any other method.
type Path struct {
	// Flatness is the curve flattening tolerance used by Contours.
	// Values <= 0 select DefaultFlatness.
	Flatness float64

	cmds []Command
	arcs *ArcCache
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{Flatness: DefaultFlatness}
}

// Parse returns a new path holding the commands of the given path data.
// Malformed commands are dropped, see ParseCommands.
func Parse(s string) *Path {
	p := NewPath()
	p.cmds = ParseCommands(s)
	return p
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Command returns the i-th command of the path.
// The second return value is false if i is out of range.
func (p *Path) Command(i int) (Command, bool) {
	if i < 0 || i >= len(p.cmds) {
		return Command{}, false
	}
	return p.cmds[i], true
}

// Commands returns a copy of the command sequence.
func (p *Path) Commands() []Command {
	return slices.Clone(p.cmds)
}

// All iterates over the commands of the path, in drawing order.
func (p *Path) All() iter.Seq2[int, Command] {
	return func(yield func(int, Command) bool) {
		for i, c := range p.cmds {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Set replaces the i-th command, for 0 <= i < p.Len().
func (p *Path) Set(i int, c Command) error {
	if i < 0 || i >= len(p.cmds) {
		return p.indexError("set", i)
	}
	p.cmds[i] = c
	return nil
}

// Insert inserts c before the i-th command, for 0 <= i <= p.Len().
func (p *Path) Insert(i int, c Command) error {
	if i < 0 || i > len(p.cmds) {
		return p.indexError("insert", i)
	}
	p.cmds = slices.Insert(p.cmds, i, c)
	return nil
}

// Append adds commands at the end of the path.
func (p *Path) Append(cs ...Command) {
	p.cmds = append(p.cmds, cs...)
}

// Remove deletes the i-th command.
// The return value reports whether a command was removed.
func (p *Path) Remove(i int) bool {
	if i < 0 || i >= len(p.cmds) {
		Logger().Debug("remove: index out of range", "index", i, "len", len(p.cmds))
		return false
	}
	p.cmds = slices.Delete(p.cmds, i, i+1)
	return true
}

// RemoveAll deletes all commands.
func (p *Path) RemoveAll() {
	clear(p.cmds)
	p.cmds = p.cmds[:0]
}

// InsertText parses path data in text form and inserts the commands
// before the i-th command, for 0 <= i <= p.Len().  Malformed commands are
// dropped.  The number of inserted commands is returned.
func (p *Path) InsertText(i int, s string) (int, error) {
	if i < 0 || i > len(p.cmds) {
		return 0, p.indexError("insert text", i)
	}
	cmds := ParseCommands(s)
	p.cmds = slices.Insert(p.cmds, i, cmds...)
	return len(cmds), nil
}

// AppendText parses path data in text form and appends the commands.
// Malformed commands are dropped.  The number of appended commands is
// returned.
func (p *Path) AppendText(s string) int {
	cmds := ParseCommands(s)
	p.cmds = append(p.cmds, cmds...)
	return len(cmds)
}

// InsertArray converts path data in array form and inserts the commands
// before the i-th command, for 0 <= i <= p.Len().  Malformed entries are
// dropped.  The number of inserted commands is returned.
func (p *Path) InsertArray(i int, a [][]any) (int, error) {
	if i < 0 || i > len(p.cmds) {
		return 0, p.indexError("insert array", i)
	}
	cmds := ParseArray(a)
	p.cmds = slices.Insert(p.cmds, i, cmds...)
	return len(cmds), nil
}

// AppendArray converts path data in array form and appends the commands.
func (p *Path) AppendArray(a [][]any) int {
	cmds := ParseArray(a)
	p.cmds = append(p.cmds, cmds...)
	return len(cmds)
}

func (p *Path) indexError(op string, i int) error {
	Logger().Debug(op+": index out of range", "index", i, "len", len(p.cmds))
	return fmt.Errorf("%s at %d (length %d): %w", op, i, len(p.cmds), ErrIndexOutOfRange)
}

// Clone returns a copy of the path.  The copy shares the arc cache of p.
func (p *Path) Clone() *Path {
	return &Path{
		Flatness: p.Flatness,
		cmds:     slices.Clone(p.cmds),
		arcs:     p.arcs,
	}
}

// ArcCache returns the cache used to flatten the arcs of this path.
// The cache is allocated on first use.
func (p *Path) ArcCache() *ArcCache {
	if p.arcs == nil {
		p.arcs = NewArcCache(0)
	}
	return p.arcs
}

// SetArcCache makes the path use the given arc cache, for example to
// share one cache between all paths of a document.
func (p *Path) SetArcCache(ac *ArcCache) {
	p.arcs = ac
}

// String returns the path data in text form.
func (p *Path) String() string {
	return p.Text(-1)
}

// Text returns the path data in text form, with the commands separated by
// single spaces.  If precision is non-negative, all numbers are rounded to
// that many significant digits.
func (p *Path) Text(precision int) string {
	var b []byte
	for i, c := range p.cmds {
		if i > 0 {
			b = append(b, ' ')
		}
		b = c.appendText(b, precision)
	}
	return string(b)
}

// Array returns the path data in array form.
func (p *Path) Array() [][]any {
	res := make([][]any, len(p.cmds))
	for i, c := range p.cmds {
		res[i] = c.Array()
	}
	return res
}

// MarshalJSON encodes the path in array form.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Array())
}

// UnmarshalJSON decodes a path given either as a JSON string holding path
// data in text form, or as a JSON array in array form.
// Malformed commands are dropped.
func (p *Path) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.cmds = ParseCommands(s)
		return nil
	}

	var a [][]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&a); err != nil {
		return err
	}
	p.cmds = ParseArray(a)
	return nil
}
