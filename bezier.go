package charts

// Stretch is the fraction of the horizontal distance between two points used
// to offset the control points of a curved segment.
var Stretch = 0.5

func ControlPoint1(prev, next Point) Point {
	ctrl := prev
	ctrl.X += (next.X - prev.X) * Stretch
	return ctrl
}

func ControlPoint2(prev, next Point) Point {
	ctrl := next
	ctrl.X -= (next.X - prev.X) * Stretch
	return ctrl
}

func controlPoints(prev, next Point) (Point, Point) {
	return ControlPoint1(prev, next), ControlPoint2(prev, next)
}

// cubicAt evaluates the cubic bezier defined by p0, c1, c2, p1 at t.
func cubicAt(p0, c1, c2, p1 Point, t float64) Point {
	var (
		a = p0.lerp(c1, t)
		b = c1.lerp(c2, t)
		c = c2.lerp(p1, t)
		d = a.lerp(b, t)
		e = b.lerp(c, t)
	)
	return d.lerp(e, t)
}

// splitCubic splits the curve at t with de Casteljau and returns the control
// points of both halves. The point at t is the end of the first half.
func splitCubic(p0, c1, c2, p1 Point, t float64) (left, right [4]Point) {
	var (
		a   = p0.lerp(c1, t)
		b   = c1.lerp(c2, t)
		c   = c2.lerp(p1, t)
		d   = a.lerp(b, t)
		e   = b.lerp(c, t)
		mid = d.lerp(e, t)
	)
	left = [4]Point{p0, a, d, mid}
	right = [4]Point{mid, e, c, p1}
	return left, right
}
