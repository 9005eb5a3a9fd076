package sr3d

import (
	"math"
	"testing"
)

func TestBarycentric_Vertices(t *testing.T) {
	a, b, c := V2(0, 0), V2(10, 0), V2(0, 10)

	tests := []struct {
		name   string
		p      Vec2
		expect Weights
	}{
		{"at A", a, Weights{A: 1, B: 0, C: 0}},
		{"at B", b, Weights{A: 0, B: 1, C: 0}},
		{"at C", c, Weights{A: 0, B: 0, C: 1}},
		{"interior", V2(2, 3), Weights{A: 0.5, B: 0.2, C: 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Barycentric(a, b, c, tt.p)
			if math.Abs(w.A-tt.expect.A) > 1e-9 ||
				math.Abs(w.B-tt.expect.B) > 1e-9 ||
				math.Abs(w.C-tt.expect.C) > 1e-9 {
				t.Errorf("Barycentric(%v) = %+v, want %+v", tt.p, w, tt.expect)
			}
		})
	}
}

func TestBarycentric_SumIsOne(t *testing.T) {
	triangles := [][3]Vec2{
		{V2(0, 0), V2(10, 0), V2(0, 10)},
		{V2(3, 7), V2(-5, 2), V2(12, -9)},
		{V2(100, 100), V2(101, 140), V2(60, 120)},
	}
	points := []Vec2{V2(0, 0), V2(1, 1), V2(5, -3), V2(-20, 40), V2(100, 120), V2(7.5, 2.25)}

	for _, tri := range triangles {
		for _, p := range points {
			w := Barycentric(tri[0], tri[1], tri[2], p)
			if w.Degenerate() {
				t.Fatalf("triangle %v unexpectedly degenerate", tri)
			}
			if sum := w.A + w.B + w.C; math.Abs(sum-1) > 1e-9 {
				t.Errorf("Barycentric(%v, %v) weights sum to %v, want 1", tri, p, sum)
			}
		}
	}
}

func TestBarycentric_Reconstructs(t *testing.T) {
	a, b, c := V2(3, 7), V2(-5, 2), V2(12, -9)
	p := V2(2, 1)

	w := Barycentric(a, b, c, p)
	got := a.Mul(w.A).Add(b.Mul(w.B)).Add(c.Mul(w.C))
	if !got.Approx(p, 1e-9) {
		t.Errorf("A*w.A + B*w.B + C*w.C = %v, want %v", got, p)
	}
}

func TestBarycentric_Containment(t *testing.T) {
	a, b, c := V2(0, 0), V2(10, 0), V2(0, 10)

	inside := []Vec2{V2(1, 1), V2(2, 2), V2(4, 5), V2(0.5, 9)}
	for _, p := range inside {
		w := Barycentric(a, b, c, p)
		if w.A <= 0 || w.B <= 0 || w.C <= 0 {
			t.Errorf("interior point %v: weights %+v, want all > 0", p, w)
		}
		if !w.Inside() {
			t.Errorf("interior point %v reported outside", p)
		}
	}

	outside := []Vec2{V2(-1, 5), V2(5, -1), V2(8, 8), V2(20, 20), V2(-3, -3)}
	for _, p := range outside {
		w := Barycentric(a, b, c, p)
		if w.A >= 0 && w.B >= 0 && w.C >= 0 {
			t.Errorf("exterior point %v: weights %+v, want one < 0", p, w)
		}
		if w.Inside() {
			t.Errorf("exterior point %v reported inside", p)
		}
	}

	// Points on an edge have a zero weight and count as inside.
	for _, p := range []Vec2{V2(5, 0), V2(0, 5)} {
		if w := Barycentric(a, b, c, p); !w.Inside() {
			t.Errorf("edge point %v: weights %+v, want inside", p, w)
		}
	}
}

func TestBarycentric_WindingIndependent(t *testing.T) {
	p := V2(2, 3)
	ccw := Barycentric(V2(0, 0), V2(10, 0), V2(0, 10), p)
	cw := Barycentric(V2(0, 0), V2(0, 10), V2(10, 0), p)

	if !ccw.Inside() || !cw.Inside() {
		t.Fatalf("point inside for both windings: ccw %+v, cw %+v", ccw, cw)
	}
	if math.Abs(ccw.B-cw.C) > 1e-9 || math.Abs(ccw.C-cw.B) > 1e-9 {
		t.Errorf("swapping B and C should swap their weights: ccw %+v, cw %+v", ccw, cw)
	}
}

func TestBarycentric_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Vec2
	}{
		{"collinear", V2(0, 0), V2(5, 5), V2(10, 10)},
		{"coincident", V2(3, 3), V2(3, 3), V2(3, 3)},
		{"sub-pixel area", V2(0, 0), V2(1, 0), V2(0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Barycentric(tt.a, tt.b, tt.c, V2(0, 0))
			if !w.Degenerate() {
				t.Errorf("Barycentric() = %+v, want degenerate sentinel", w)
			}
			if w != (Weights{A: -1, B: -1, C: -1}) {
				t.Errorf("sentinel = %+v, want (-1, -1, -1)", w)
			}
			if w.Inside() {
				t.Error("degenerate weights must not count as inside")
			}
		})
	}
}

func TestWeights_Interpolate(t *testing.T) {
	w := Weights{A: 0.5, B: 0.25, C: 0.25}
	if got := w.Interpolate(4, 8, 12); got != 7 {
		t.Errorf("Interpolate(4, 8, 12) = %v, want 7", got)
	}
}

func TestBBox(t *testing.T) {
	tests := []struct {
		name                   string
		points                 []Vec2
		xmax, ymax, xmin, ymin int
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []Vec2{V2(3, 4)}, 3, 4, 3, 4},
		{"triangle", []Vec2{V2(1, 2), V2(5, -3), V2(4, 7)}, 5, 7, 1, -3},
		{"fractional", []Vec2{V2(0.5, 1.2), V2(2.1, 3.9)}, 3, 4, 0, 1},
		{"many", []Vec2{V2(0, 0), V2(-9, 1), V2(2, 8), V2(6, -4), V2(1, 1)}, 6, 8, -9, -4},
		{"infinite", []Vec2{V2(math.Inf(-1), 0), V2(math.Inf(1), 3)}, math.MaxInt32, 3, math.MinInt32, 0},
		{"huge", []Vec2{V2(-1e300, -5e12), V2(1e300, 7)}, math.MaxInt32, 7, math.MinInt32, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xmax, ymax, xmin, ymin := BBox(tt.points...)
			if xmax != tt.xmax || ymax != tt.ymax || xmin != tt.xmin || ymin != tt.ymin {
				t.Errorf("BBox() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					xmax, ymax, xmin, ymin, tt.xmax, tt.ymax, tt.xmin, tt.ymin)
			}
		})
	}
}
