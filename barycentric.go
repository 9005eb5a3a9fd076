package sr3d

import "math"

// Weights holds the barycentric coordinates of a point relative to a
// triangle ABC. Each field is the weight of the vertex it is named after:
//
//	P = A*w.A + B*w.B + C*w.C
//
// The same pairing is used for containment and for depth interpolation.
type Weights struct {
	A, B, C float64
}

// degenerate is returned for triangles with less than one pixel of
// doubled area. It fails Inside.
var degenerate = Weights{A: -1, B: -1, C: -1}

// Inside reports whether the point lies inside the triangle or on one of
// its edges. A zero weight counts as inside, so pixels on an edge shared
// by two triangles are drawn by both.
func (w Weights) Inside() bool {
	return w.A >= 0 && w.B >= 0 && w.C >= 0
}

// Degenerate reports whether the weights are the sentinel returned for a
// triangle too thin to fill.
func (w Weights) Degenerate() bool {
	return w == degenerate
}

// Interpolate blends three scalar attributes of A, B and C.
func (w Weights) Interpolate(a, b, c float64) float64 {
	return a*w.A + b*w.B + c*w.C
}

// Barycentric computes the weights of p relative to the triangle abc.
//
// The cross product of (AB.x, AC.x, PA.x) and (AB.y, AC.y, PA.y) is
// proportional to (u, v, 1), where u weighs B and v weighs C. When its
// z-component is below one the triangle covers no pixel area and the
// degenerate sentinel (-1, -1, -1) is returned.
func Barycentric(a, b, c, p Vec2) Weights {
	cr := V3(b.X-a.X, c.X-a.X, a.X-p.X).Cross(V3(b.Y-a.Y, c.Y-a.Y, a.Y-p.Y))
	if math.Abs(cr.Z) < 1 {
		return degenerate
	}

	u := cr.X / cr.Z
	v := cr.Y / cr.Z
	return Weights{A: 1 - (u + v), B: u, C: v}
}

// BBox returns the integer axis-aligned bounding rectangle of the points
// as (xmax, ymax, xmin, ymin). Fractional coordinates are widened so the
// rectangle covers every point. Coordinates beyond the int32 range,
// infinities included, are clamped to it; NaN counts as zero. With no
// points all four values are zero.
func BBox(points ...Vec2) (xmax, ymax, xmin, ymin int) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	maxX, maxY := points[0].X, points[0].Y
	minX, minY := maxX, maxY
	for _, p := range points[1:] {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}

	return toInt(math.Ceil(maxX)), toInt(math.Ceil(maxY)), toInt(math.Floor(minX)), toInt(math.Floor(minY))
}

// toInt converts an integral float to int, saturating at the int32 range.
func toInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
