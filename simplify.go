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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Simplify removes redundant move and close commands from the path.
//
// Consecutive relative moves are combined, a relative move following an
// absolute move is made absolute, only the last move of a sequence of
// moves is kept, repeated close commands are reduced to one, moves which
// do not change the current point are removed, and a trailing move is
// dropped.
func (p *Path) Simplify() {
	p.cmds = simplify(p.cmds)
}

// Simplify returns a simplified copy of cmds, see Path.Simplify.
func Simplify(cmds []Command) []Command {
	return simplify(slices.Clone(cmds))
}

// simplify works in place and returns the shortened slice.
func simplify(cmds []Command) []Command {
	if len(cmds) == 0 {
		return cmds
	}

	cmds = mergeRelativeMoves(cmds)
	absoluteMoves(cmds)
	cmds = keepLastMove(cmds)
	cmds = dedupCloses(cmds)
	n := len(cmds)
	cmds = dropNopMoves(cmds)
	if len(cmds) < n {
		// a removed move may have separated two close commands
		cmds = dedupCloses(cmds)
	}
	if last := len(cmds) - 1; last >= 0 && cmds[last].Kind == MoveTo {
		cmds = cmds[:last]
	}
	return cmds
}

func isRelativeMove(c Command) bool {
	return c.Kind == MoveTo && c.Mode == Relative
}

// mergeRelativeMoves replaces every run of relative moves by a single move
// with the combined displacement.
func mergeRelativeMoves(cmds []Command) []Command {
	out := cmds[:1]
	for _, c := range cmds[1:] {
		last := &out[len(out)-1]
		if isRelativeMove(*last) && isRelativeMove(c) {
			last.End = last.End.Add(c.End)
			continue
		}
		out = append(out, c)
	}
	return out
}

// absoluteMoves resolves relative moves which follow an absolute move.
func absoluteMoves(cmds []Command) {
	for i := 1; i < len(cmds); i++ {
		prev := cmds[i-1]
		if isRelativeMove(cmds[i]) && prev.Kind == MoveTo && prev.Mode == Absolute {
			cmds[i].ToAbsolute(&prev.End, nil)
		}
	}
}

// keepLastMove keeps only the last command of every run of moves.
func keepLastMove(cmds []Command) []Command {
	out := cmds[:0]
	for i, c := range cmds {
		if c.Kind == MoveTo && i+1 < len(cmds) && cmds[i+1].Kind == MoveTo {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dedupCloses keeps only the first command of every run of close commands.
func dedupCloses(cmds []Command) []Command {
	out := cmds[:1]
	for _, c := range cmds[1:] {
		if c.Kind == ClosePath && out[len(out)-1].Kind == ClosePath {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dropNopMoves removes moves which leave the current point unchanged.
// The first command is always kept.
func dropNopMoves(cmds []Command) []Command {
	out := cmds[:1]
	for _, c := range cmds[1:] {
		if c.Kind == MoveTo {
			if c.Mode == Relative && c.End == (vec.Vec2{}) {
				continue
			}
			if c.Mode == Absolute {
				if end, ok := storedEnd(out[len(out)-1]); ok && end == c.End {
					continue
				}
			}
		}
		out = append(out, c)
	}
	return out
}

// storedEnd returns the end point of an absolute command, if this is fully
// stored in the command.
func storedEnd(c Command) (vec.Vec2, bool) {
	if c.Mode != Absolute {
		return vec.Vec2{}, false
	}
	switch c.Kind {
	case HLineTo, VLineTo, ClosePath:
		return vec.Vec2{}, false
	default:
		return c.End, true
	}
}

// NumSubpaths returns the number of sub-paths.  The result is only
// meaningful for simplified paths.
//
// Every move starts a new sub-path, and so does any command following a
// close command.  If the path does not start with a move, the first
// command starts an implicit sub-path at the origin.
func (p *Path) NumSubpaths() int {
	return numSubpaths(p.cmds)
}

func numSubpaths(cmds []Command) int {
	if len(cmds) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Kind == MoveTo || cmds[i-1].Kind == ClosePath {
			n++
		}
	}
	return n
}
