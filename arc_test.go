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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func TestArcEndpoints(t *testing.T) {
	cases := []struct {
		arc   Command
		start vec.Vec2
	}{
		{Arc(Absolute, 10, 10, 0, false, true, 20, 0), vec.Vec2{}},
		{Arc(Absolute, 30, 20, 15, true, true, 50, 10), vec.Vec2{X: 20, Y: 20}},
		{Arc(Absolute, 30, 20, -45, true, false, 50, 10), vec.Vec2{X: 20, Y: 20}},
		{Arc(Absolute, 5, 80, 90, false, false, -7, 3), vec.Vec2{X: 1, Y: 1}},
		{Arc(Absolute, 1, 1, 0, false, false, 100, 100), vec.Vec2{}},
	}
	for i, tc := range cases {
		bs := ArcToBeziers(tc.arc, tc.start, nil)
		if len(bs) == 0 || len(bs) > 4 {
			t.Errorf("%d: %d curves", i, len(bs))
			continue
		}
		if bs[0].P0 != tc.start {
			t.Errorf("%d: starts at %v", i, bs[0].P0)
		}
		if last := bs[len(bs)-1].P3; last != tc.arc.End {
			t.Errorf("%d: ends at %v", i, last)
		}
		for j := 1; j < len(bs); j++ {
			if bs[j].P0 != bs[j-1].P3 {
				t.Errorf("%d: curve %d does not join up", i, j)
			}
		}
	}
}

func TestArcOnCircle(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 0}
	for _, sweep := range []bool{false, true} {
		bs := ArcToBeziers(Arc(Absolute, 10, 10, 0, false, sweep, 20, 0), vec.Vec2{}, nil)
		if len(bs) != 2 {
			t.Fatalf("sweep=%t: %d curves, want 2", sweep, len(bs))
		}
		for _, b := range bs {
			for k := 0; k <= 10; k++ {
				r := b.At(float64(k) / 10).Sub(center).Length()
				if math.Abs(r-10) > 0.01 {
					t.Errorf("sweep=%t: point at distance %g from the center", sweep, r)
				}
			}
		}

		// with the y-axis pointing down, a positive sweep passes above
		mid := bs[0].P3
		wantY := 10.0
		if sweep {
			wantY = -10
		}
		if math.Abs(mid.X-10) > 1e-9 || math.Abs(mid.Y-wantY) > 1e-9 {
			t.Errorf("sweep=%t: midpoint %v", sweep, mid)
		}
	}
}

func TestArcLargeFlag(t *testing.T) {
	small := ArcToBeziers(Arc(Absolute, 10, 10, 0, false, true, 10, 0), vec.Vec2{}, nil)
	large := ArcToBeziers(Arc(Absolute, 10, 10, 0, true, true, 10, 0), vec.Vec2{}, nil)
	if len(small) != 1 {
		t.Errorf("small arc: %d curves, want 1", len(small))
	}
	if len(large) != 4 {
		t.Errorf("large arc: %d curves, want 4", len(large))
	}
}

func TestArcRadiusScaling(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	want := ArcToBeziers(Arc(Absolute, 10, 10, 0, false, true, 20, 0), vec.Vec2{}, nil)
	for _, r := range []float64{0.001, 1, 9.999} {
		got := ArcToBeziers(Arc(Absolute, r, r, 0, false, true, 20, 0), vec.Vec2{}, nil)
		if d := cmp.Diff(want, got, approx); d != "" {
			t.Errorf("r=%g (-want +got):\n%s", r, d)
		}
	}

	// the aspect ratio is kept
	got := ArcToBeziers(Arc(Absolute, 1, 2, 0, false, true, 0, 40), vec.Vec2{}, nil)
	want = ArcToBeziers(Arc(Absolute, 10, 20, 0, false, true, 0, 40), vec.Vec2{}, nil)
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("ellipse (-want +got):\n%s", d)
	}
}

func TestArcDegenerate(t *testing.T) {
	start := vec.Vec2{X: 3, Y: 4}
	if bs := ArcToBeziers(Arc(Absolute, 5, 5, 0, true, true, 3, 4), start, nil); len(bs) != 0 {
		t.Errorf("empty arc gives %d curves", len(bs))
	}

	end := vec.Vec2{X: 10, Y: -2}
	want := []CubicBezier{{P0: start, P1: start, P2: end, P3: end}}
	for _, arc := range []Command{
		Arc(Absolute, 0, 5, 0, false, true, end.X, end.Y),
		Arc(Absolute, 5, 0, 30, true, false, end.X, end.Y),
	} {
		if d := cmp.Diff(want, ArcToBeziers(arc, start, nil)); d != "" {
			t.Errorf("%v (-want +got):\n%s", arc, d)
		}
	}
}

func TestArcRelative(t *testing.T) {
	start := vec.Vec2{X: 5, Y: 5}
	rel := ArcToBeziers(Arc(Relative, 10, 10, 0, false, true, 20, 0), start, nil)
	abs := ArcToBeziers(Arc(Absolute, 10, 10, 0, false, true, 25, 5), start, nil)
	if d := cmp.Diff(abs, rel); d != "" {
		t.Errorf("(-absolute +relative):\n%s", d)
	}
}

func TestArcCache(t *testing.T) {
	ac := NewArcCache(0)
	arc := Arc(Absolute, 30, 20, 15, true, true, 50, 10)
	start := vec.Vec2{X: 20, Y: 20}

	first := ArcToBeziers(arc, start, ac)
	second := ArcToBeziers(arc, start, ac)
	if d := cmp.Diff(ArcToBeziers(arc, start, nil), second); d != "" {
		t.Errorf("cached result differs (-want +got):\n%s", d)
	}
	if &first[0] != &second[0] {
		t.Error("second lookup did not use the cache")
	}
	want := ArcCacheStats{Len: 1, Hits: 1, Misses: 1}
	if got := ac.Stats(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// the same arc from a different start point is a different entry
	ArcToBeziers(arc, vec.Vec2{X: 21, Y: 20}, ac)
	// a relative arc is keyed by its absolute form
	ArcToBeziers(Arc(Relative, 30, 20, 15, true, true, 30, -10), start, ac)
	want = ArcCacheStats{Len: 2, Hits: 2, Misses: 2}
	if got := ac.Stats(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	ac.Clear()
	if got := ac.Stats(); got != (ArcCacheStats{}) {
		t.Errorf("after Clear: %+v", got)
	}
}

func TestArcCacheEviction(t *testing.T) {
	ac := NewArcCache(2)
	for i := range 5 {
		ArcToBeziers(Arc(Absolute, 10, 10, 0, false, true, float64(i+1), 0), vec.Vec2{}, ac)
	}
	if ac.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", ac.Len())
	}
}

func TestArcCacheConcurrent(t *testing.T) {
	ac := NewArcCache(0)
	arc := Arc(Absolute, 30, 20, 15, true, true, 50, 10)
	start := vec.Vec2{X: 20, Y: 20}
	want := ArcToBeziers(arc, start, nil)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]string, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = cmp.Diff(want, ArcToBeziers(arc, start, ac))
		}()
	}
	wg.Wait()

	for i, d := range errs {
		if d != "" {
			t.Errorf("goroutine %d (-want +got):\n%s", i, d)
		}
	}
	st := ac.Stats()
	if st.Len != 1 || st.Misses == 0 || st.Hits+st.Misses != n {
		t.Errorf("unexpected statistics %+v", st)
	}
}
