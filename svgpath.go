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

// Package svgpath parses, simplifies and flattens SVG path data.
//
// A [Path] holds an ordered sequence of [Command] values, built from the
// textual path language ("M 10,20 l 5,0 Z") or from the equivalent array
// form ([["M", 10, 20], ["l", 5, 0], ["Z"]]).  Coordinate pairs must be
// separated by a comma, and every command repeats its letter.
//
// [Path.Contours] splits a path into its sub-paths and approximates every
// curve and elliptical arc by straight line segments, producing one
// polyline per sub-path.  The approximation error is controlled by a
// flatness tolerance in the units of the path coordinates.
package svgpath

import (
	"errors"
	"fmt"
)

// Kind identifies one of the ten path commands.
// The value of a Kind is the upper case command letter.
type Kind byte

// These are the supported command kinds.
const (
	MoveTo       Kind = 'M'
	LineTo       Kind = 'L'
	HLineTo      Kind = 'H'
	VLineTo      Kind = 'V'
	ArcTo        Kind = 'A'
	QuadTo       Kind = 'Q'
	SmoothQuadTo Kind = 'T'
	CubeTo       Kind = 'C'
	SmoothCubeTo Kind = 'S'
	ClosePath    Kind = 'Z'
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case HLineTo:
		return "HLineTo"
	case VLineTo:
		return "VLineTo"
	case ArcTo:
		return "ArcTo"
	case QuadTo:
		return "QuadTo"
	case SmoothQuadTo:
		return "SmoothQuadTo"
	case CubeTo:
		return "CubeTo"
	case SmoothCubeTo:
		return "SmoothCubeTo"
	case ClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// numArgs returns the number of numeric arguments which follow the command
// letter, or -1 if k is not a valid command kind.
func (k Kind) numArgs() int {
	switch k {
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case HLineTo, VLineTo:
		return 1
	case QuadTo, SmoothCubeTo:
		return 4
	case CubeTo:
		return 6
	case ArcTo:
		return 7
	case ClosePath:
		return 0
	default:
		return -1
	}
}

// Mode says whether the coordinates of a command are measured from the
// origin or from the current point.
type Mode uint8

// These are the two coordinate modes.
const (
	Absolute Mode = iota
	Relative
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "Absolute"
	case Relative:
		return "Relative"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// parseLetter maps a command letter to its kind and coordinate mode.
func parseLetter(c byte) (Kind, Mode, bool) {
	mode := Absolute
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
		mode = Relative
	}
	k := Kind(c)
	if k.numArgs() < 0 {
		return 0, 0, false
	}
	if k == ClosePath {
		mode = Absolute
	}
	return k, mode, true
}

var (
	// ErrNoStartPoint is returned when a relative command is resolved to
	// absolute coordinates without a start point or a context.
	ErrNoStartPoint = errors.New("svgpath: no start point for relative command")

	// ErrNoContext is returned when a command is flattened without a
	// context.
	ErrNoContext = errors.New("svgpath: missing context")

	// ErrIndexOutOfRange is returned by Path methods which are given an
	// invalid command index.
	ErrIndexOutOfRange = errors.New("svgpath: index out of range")
)
