package render

import "math"

// SurfacePoint returns the point on the circle of radius r centered at
// (x1, y1) that faces (x2, y2). Coincident centers yield the center itself.
//
// The point is built from the angle to the vertical, atan(|dx|/|dy|), with
// the offsets r·cos and r·sin applied by quadrant; screen y grows downward.
func SurfacePoint(x1, y1, x2, y2, r float64) (float64, float64) {
	dx, dy := math.Abs(x2-x1), math.Abs(y2-y1)
	if dx == 0 && dy == 0 {
		return x1, y1
	}
	angle := math.Atan2(dx, dy)
	a := r * math.Cos(angle)
	b := r * math.Sin(angle)

	x, y := x1, y1
	if y2 <= y1 {
		y -= a
	} else {
		y += a
	}
	if x2 >= x1 {
		x += b
	} else {
		x -= b
	}

	return x, y
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
