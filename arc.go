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
	"math"
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// DefaultArcCacheCapacity is the capacity used by NewArcCache when no
// positive capacity is given.
const DefaultArcCacheCapacity = 4096

// maxArcSegment is the largest angle spanned by a single Bézier curve in
// the approximation of an arc.
const maxArcSegment = math.Pi/2 + 0.001

// ArcCache memoizes the Bézier approximations of elliptical arcs.
// Entries are keyed by the arc parameters together with the start point.
// The slices stored in the cache must not be modified.
//
// An ArcCache is safe for concurrent use.
type ArcCache struct {
	lru    *lru.Cache[string, []CubicBezier]
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// ArcCacheStats reports the activity of an ArcCache.
type ArcCacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// NewArcCache returns an empty cache which holds at most capacity arcs.
// Least recently used entries are evicted first.
func NewArcCache(capacity int) *ArcCache {
	if capacity <= 0 {
		capacity = DefaultArcCacheCapacity
	}
	c, err := lru.New[string, []CubicBezier](capacity)
	if err != nil {
		// only happens for non-positive sizes
		panic(err)
	}
	return &ArcCache{lru: c}
}

// Len returns the number of cached arcs.
func (ac *ArcCache) Len() int {
	return ac.lru.Len()
}

// Clear removes all entries from the cache and resets the statistics.
func (ac *ArcCache) Clear() {
	ac.lru.Purge()
	ac.hits.Store(0)
	ac.misses.Store(0)
}

// Stats returns the current size and the hit and miss counts.
func (ac *ArcCache) Stats() ArcCacheStats {
	return ArcCacheStats{
		Len:    ac.lru.Len(),
		Hits:   ac.hits.Load(),
		Misses: ac.misses.Load(),
	}
}

func (ac *ArcCache) lookup(arc Command, start vec.Vec2) []CubicBezier {
	key := arcKey(arc, start)
	if curves, ok := ac.lru.Get(key); ok {
		ac.hits.Add(1)
		return curves
	}

	// callers which wait for a concurrent computation count as hits
	computed := false
	v, _, _ := ac.group.Do(key, func() (any, error) {
		computed = true
		Logger().Debug("arc cache miss", "key", key)
		curves := arcToBeziers(arc, start)
		ac.lru.Add(key, curves)
		return curves, nil
	})
	if computed {
		ac.misses.Add(1)
	} else {
		ac.hits.Add(1)
	}
	return v.([]CubicBezier)
}

// arcKey serializes the absolute arc command and its start point.
func arcKey(arc Command, start vec.Vec2) string {
	b := arc.appendText(make([]byte, 0, 96), -1)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, start.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, start.Y, 'g', -1, 64)
	return string(b)
}

// ArcToBeziers returns cubic Bézier curves which together approximate the
// elliptical arc from start to arc.End.  A relative arc is taken relative
// to start.
//
// The arc is split into pieces spanning at most a quarter turn each.  If
// the radii are too small to reach the end point, they are scaled up
// uniformly.  An arc which ends at its start point is empty, and an arc
// with a zero radius is a straight line.
//
// If arcs is non-nil, results are looked up in and stored into the cache.
// The returned slice must not be modified in this case.
func ArcToBeziers(arc Command, start vec.Vec2, arcs *ArcCache) []CubicBezier {
	if arc.Mode == Relative {
		arc.translate(start)
		arc.Mode = Absolute
	}
	if arcs == nil {
		return arcToBeziers(arc, start)
	}
	return arcs.lookup(arc, start)
}

func arcToBeziers(arc Command, start vec.Vec2) []CubicBezier {
	end := arc.End
	if start == end {
		return nil
	}
	rx, ry := math.Abs(arc.RX), math.Abs(arc.RY)
	if rx == 0 || ry == 0 {
		return []CubicBezier{{P0: start, P1: start, P2: end, P3: end}}
	}

	sinTh, cosTh := math.Sincos(float64(arc.Rotation) * math.Pi / 180)

	// half the chord, in the coordinate frame of the ellipse axes
	h := start.Sub(end).Mul(0.5)
	px := cosTh*h.X + sinTh*h.Y
	py := cosTh*h.Y - sinTh*h.X
	if pl := px*px/(rx*rx) + py*py/(ry*ry); pl > 1 {
		s := math.Sqrt(pl)
		rx *= s
		ry *= s
	}

	// toUnit maps the ellipse onto a unit circle, fromUnit is its inverse
	toUnit := matrix.Matrix{cosTh / rx, -sinTh / ry, sinTh / rx, cosTh / ry, 0, 0}
	fromUnit := matrix.Matrix{cosTh * rx, sinTh * rx, -sinTh * ry, cosTh * ry, 0, 0}

	p0 := transform(toUnit, start)
	p1 := transform(toUnit, end)

	d := p1.Sub(p0)
	sf := math.Sqrt(max(1/(d.X*d.X+d.Y*d.Y)-0.25, 0))
	if arc.Sweep == arc.LargeArc {
		sf = -sf
	}
	center := vec.Vec2{
		X: (p0.X+p1.X)/2 - sf*d.Y,
		Y: (p0.Y+p1.Y)/2 + sf*d.X,
	}

	th0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	th1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	dTh := th1 - th0
	if dTh < 0 && arc.Sweep {
		dTh += 2 * math.Pi
	} else if dTh > 0 && !arc.Sweep {
		dTh -= 2 * math.Pi
	}

	n := max(int(math.Ceil(math.Abs(dTh)/maxArcSegment)), 1)
	res := make([]CubicBezier, n)
	prev := start
	for i := range n {
		a0 := th0 + float64(i)*dTh/float64(n)
		a1 := th0 + float64(i+1)*dTh/float64(n)
		res[i] = arcSegment(fromUnit, center, a0, a1)
		res[i].P0 = prev
		prev = res[i].P3
	}
	res[n-1].P3 = end
	return res
}

// arcSegment approximates the arc of the unit circle around center from
// angle a0 to a1 and maps the result through m.  P0 is left unset.
func arcSegment(m matrix.Matrix, center vec.Vec2, a0, a1 float64) CubicBezier {
	half := (a1 - a0) / 2
	s := math.Sin(half / 2)
	t := 8.0 / 3 * s * s / math.Sin(half)

	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)
	q1 := vec.Vec2{X: center.X + cos0 - t*sin0, Y: center.Y + sin0 + t*cos0}
	q3 := vec.Vec2{X: center.X + cos1, Y: center.Y + sin1}
	q2 := vec.Vec2{X: q3.X + t*sin1, Y: q3.Y - t*cos1}
	return CubicBezier{
		P1: transform(m, q1),
		P2: transform(m, q2),
		P3: transform(m, q3),
	}
}

// transform applies the affine map m to v.
func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
