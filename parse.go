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
	"fmt"
	"math"
	"strconv"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"
)

// SyntaxError describes a malformed command in path data.
type SyntaxError struct {
	Offset int    // byte offset of the command letter, or index in array form
	Letter byte   // command letter, or 0 if unknown
	Msg    string // description of the problem
}

func (e *SyntaxError) Error() string {
	if e.Letter == 0 {
		return fmt.Sprintf("svgpath: offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("svgpath: offset %d: command %q: %s", e.Offset, e.Letter, e.Msg)
}

// ParseCommands parses path data in text form.
//
// Every command consists of a command letter followed by its arguments.
// Coordinate pairs are written as "x,y", the arc rotation is an integer
// and the arc flags are the digits 0 and 1.  Whitespace between tokens is
// optional.  Malformed commands are dropped and parsing resumes with the
// next command letter.
func ParseCommands(s string) []Command {
	cmds, errs := parseText(s)
	for _, err := range errs {
		Logger().Debug("dropped path command", "err", err)
	}
	return cmds
}

// ParseStrict is like ParseCommands, but in addition returns an error
// listing every dropped command.  The returned commands are the same as
// for ParseCommands.
func ParseStrict(s string) ([]Command, error) {
	cmds, errs := parseText(s)
	return cmds, errors.Join(errs...)
}

func parseText(s string) ([]Command, []error) {
	sc := &scanner{buf: []byte(s)}
	var cmds []Command
	var errs []error
	for {
		sc.skipSpace()
		if sc.pos >= len(sc.buf) {
			break
		}

		start := sc.pos
		letter := sc.buf[sc.pos]
		kind, mode, ok := parseLetter(letter)
		if !ok {
			msg := "unknown command"
			if !isLetter(letter) {
				letter = 0
				msg = "expected command letter"
			}
			errs = append(errs, &SyntaxError{Offset: start, Letter: letter, Msg: msg})
			sc.pos++
			sc.skipToLetter()
			continue
		}
		sc.pos++

		c, msg := sc.command(kind, mode)
		if msg == "" {
			sc.skipSpace()
			if sc.pos < len(sc.buf) && !isLetter(sc.buf[sc.pos]) {
				msg = "unexpected argument"
			}
		}
		if msg != "" {
			errs = append(errs, &SyntaxError{Offset: start, Letter: letter, Msg: msg})
			sc.skipToLetter()
			continue
		}
		cmds = append(cmds, c)
	}
	return cmds, errs
}

type scanner struct {
	buf []byte
	pos int
}

// command reads the arguments of a command of the given kind.
// On failure, a non-empty message is returned.
func (sc *scanner) command(kind Kind, mode Mode) (Command, string) {
	c := Command{Kind: kind, Mode: mode}
	var ok bool
	switch kind {
	case ClosePath:
		return c, ""
	case MoveTo, LineTo, SmoothQuadTo:
		c.End, ok = sc.pair()
	case HLineTo:
		c.End.X, ok = sc.number()
	case VLineTo:
		c.End.Y, ok = sc.number()
	case QuadTo:
		if c.Ctrl1, ok = sc.pair(); ok {
			c.End, ok = sc.pair()
		}
	case SmoothCubeTo:
		if c.Ctrl2, ok = sc.pair(); ok {
			c.End, ok = sc.pair()
		}
	case CubeTo:
		if c.Ctrl1, ok = sc.pair(); ok {
			if c.Ctrl2, ok = sc.pair(); ok {
				c.End, ok = sc.pair()
			}
		}
	case ArcTo:
		var r vec.Vec2
		if r, ok = sc.pair(); !ok {
			return c, "expected radii"
		}
		c.RX, c.RY = math.Abs(r.X), math.Abs(r.Y)
		if c.Rotation, ok = sc.integer(); !ok {
			return c, "expected integer rotation"
		}
		if c.LargeArc, ok = sc.flag(); !ok {
			return c, "expected large-arc flag"
		}
		if c.Sweep, ok = sc.flag(); !ok {
			return c, "expected sweep flag"
		}
		c.End, ok = sc.pair()
	}
	if !ok {
		return c, "expected coordinates"
	}
	return c, ""
}

func (sc *scanner) number() (float64, bool) {
	sc.skipSpace()
	_, n := tstrconv.ParseFloat(sc.buf[sc.pos:])
	if n == 0 {
		return 0, false
	}
	// the tdewolff value is not always correctly rounded
	x, err := strconv.ParseFloat(string(sc.buf[sc.pos:sc.pos+n]), 64)
	if err != nil && (!errors.Is(err, strconv.ErrRange) || math.IsInf(x, 0)) {
		return 0, false
	}
	sc.pos += n
	return x, true
}

// pair reads an "x,y" coordinate pair.  Whitespace is allowed around the
// comma.
func (sc *scanner) pair() (vec.Vec2, bool) {
	x, ok := sc.number()
	if !ok {
		return vec.Vec2{}, false
	}
	sc.skipSpace()
	if sc.pos >= len(sc.buf) || sc.buf[sc.pos] != ',' {
		return vec.Vec2{}, false
	}
	sc.pos++
	y, ok := sc.number()
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: x, Y: y}, true
}

func (sc *scanner) integer() (int, bool) {
	sc.skipSpace()
	x, n := tstrconv.ParseInt(sc.buf[sc.pos:])
	if n == 0 || x < math.MinInt32 || x > math.MaxInt32 {
		return 0, false
	}
	sc.pos += n
	if sc.pos < len(sc.buf) {
		switch sc.buf[sc.pos] {
		case '.', 'e', 'E':
			return 0, false
		}
	}
	return int(x), true
}

func (sc *scanner) flag() (bool, bool) {
	sc.skipSpace()
	if sc.pos >= len(sc.buf) {
		return false, false
	}
	c := sc.buf[sc.pos]
	if c != '0' && c != '1' {
		return false, false
	}
	sc.pos++
	if sc.pos < len(sc.buf) {
		if next := sc.buf[sc.pos]; next == '.' || isDigit(next) {
			return false, false
		}
	}
	return c == '1', true
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.buf) {
		switch sc.buf[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) skipToLetter() {
	for sc.pos < len(sc.buf) && !isLetter(sc.buf[sc.pos]) {
		sc.pos++
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ParseArray converts path data in array form.  Every entry holds the
// command letter as a string, followed by the arguments in the order of
// the text form.  Numbers may have any Go numeric type or be json.Number
// values; arc flags may also be booleans.  Malformed entries are dropped.
func ParseArray(a [][]any) []Command {
	cmds, errs := parseArray(a)
	for _, err := range errs {
		Logger().Debug("dropped path command", "err", err)
	}
	return cmds
}

func parseArray(a [][]any) ([]Command, []error) {
	var cmds []Command
	var errs []error
	for i, entry := range a {
		c, err := arrayCommand(i, entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cmds = append(cmds, c)
	}
	return cmds, errs
}

func arrayCommand(idx int, entry []any) (Command, error) {
	if len(entry) == 0 {
		return Command{}, &SyntaxError{Offset: idx, Msg: "empty command"}
	}
	s, ok := entry[0].(string)
	if !ok || len(s) != 1 {
		return Command{}, &SyntaxError{Offset: idx, Msg: fmt.Sprintf("invalid command letter %v", entry[0])}
	}
	kind, mode, ok := parseLetter(s[0])
	if !ok {
		return Command{}, &SyntaxError{Offset: idx, Letter: s[0], Msg: "unknown command"}
	}
	args := entry[1:]
	if len(args) != kind.numArgs() {
		return Command{}, &SyntaxError{
			Offset: idx,
			Letter: s[0],
			Msg:    fmt.Sprintf("expected %d arguments, got %d", kind.numArgs(), len(args)),
		}
	}

	x := make([]float64, len(args))
	for i, arg := range args {
		f, ok := toFloat(arg)
		if !ok {
			if kind != ArcTo || (i != 3 && i != 4) {
				return Command{}, &SyntaxError{Offset: idx, Letter: s[0], Msg: fmt.Sprintf("invalid argument %v", arg)}
			}
			b, isBool := arg.(bool)
			if !isBool {
				return Command{}, &SyntaxError{Offset: idx, Letter: s[0], Msg: fmt.Sprintf("invalid flag %v", arg)}
			}
			if b {
				f = 1
			}
		}
		x[i] = f
	}

	c := Command{Kind: kind, Mode: mode}
	switch kind {
	case MoveTo, LineTo, SmoothQuadTo:
		c.End = vec.Vec2{X: x[0], Y: x[1]}
	case HLineTo:
		c.End.X = x[0]
	case VLineTo:
		c.End.Y = x[0]
	case QuadTo:
		c.Ctrl1 = vec.Vec2{X: x[0], Y: x[1]}
		c.End = vec.Vec2{X: x[2], Y: x[3]}
	case SmoothCubeTo:
		c.Ctrl2 = vec.Vec2{X: x[0], Y: x[1]}
		c.End = vec.Vec2{X: x[2], Y: x[3]}
	case CubeTo:
		c.Ctrl1 = vec.Vec2{X: x[0], Y: x[1]}
		c.Ctrl2 = vec.Vec2{X: x[2], Y: x[3]}
		c.End = vec.Vec2{X: x[4], Y: x[5]}
	case ArcTo:
		if x[2] != math.Trunc(x[2]) || math.Abs(x[2]) > math.MaxInt32 {
			return Command{}, &SyntaxError{Offset: idx, Letter: s[0], Msg: "rotation must be an integer"}
		}
		c = Arc(mode, x[0], x[1], int(x[2]), x[3] != 0, x[4] != 0, x[5], x[6])
	}
	return c, nil
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Array returns the command in array form: the command letter followed by
// the arguments in the order of the text form.  Arc flags are represented
// as the numbers 0 and 1.
func (c Command) Array() []any {
	res := []any{string(rune(c.Letter()))}
	for _, x := range c.args() {
		res = append(res, x)
	}
	return res
}

// args returns the numeric arguments of the command.
func (c Command) args() []float64 {
	switch c.Kind {
	case MoveTo, LineTo, SmoothQuadTo:
		return []float64{c.End.X, c.End.Y}
	case HLineTo:
		return []float64{c.End.X}
	case VLineTo:
		return []float64{c.End.Y}
	case QuadTo:
		return []float64{c.Ctrl1.X, c.Ctrl1.Y, c.End.X, c.End.Y}
	case SmoothCubeTo:
		return []float64{c.Ctrl2.X, c.Ctrl2.Y, c.End.X, c.End.Y}
	case CubeTo:
		return []float64{c.Ctrl1.X, c.Ctrl1.Y, c.Ctrl2.X, c.Ctrl2.Y, c.End.X, c.End.Y}
	case ArcTo:
		return []float64{c.RX, c.RY, float64(c.Rotation), boolNum(c.LargeArc), boolNum(c.Sweep), c.End.X, c.End.Y}
	default:
		return nil
	}
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
