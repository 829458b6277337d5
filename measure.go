package charts

import (
	"math"

	"golang.org/x/exp/constraints"
)

// TrimWindow is the length, as a fraction of the whole path, of the sub path
// sampled by PointAtPercentage.
const TrimWindow = 0.001

// TotalLength returns the length of the path. Every segment, curves included,
// is measured by the distance between its two anchor points.
func TotalLength(p Path) float64 {
	var total float64
	p.segments(func(from Point, e Element) bool {
		total += from.Distance(e.End())
		return true
	})
	return total
}

// LengthToX returns the length of the path from its start up to the vertical
// line at x. The segment crossing x contributes the part of its chord on the
// left of x.
func LengthToX(p Path, x float64) float64 {
	var total float64
	p.segments(func(from Point, e Element) bool {
		var (
			end  = e.End()
			dist = from.Distance(end)
		)
		if end.X <= x {
			total += dist
			return true
		}
		if diff := end.X - from.X; diff != 0 {
			t := clamp((x-from.X)/diff, 0, 1)
			total += dist * t
		}
		return false
	})
	return total
}

func PercentageAt(p Path, x float64) float64 {
	total := TotalLength(p)
	if total == 0 {
		return 0
	}
	return LengthToX(p, x) / total
}

// PointAtPercentage estimates the point located at pct of the path length.
// A value above 1 wraps to the start of the path, a value below 0 to its end.
// The point is the center of the bounding box of a small sub path starting at
// pct.
func PointAtPercentage(p Path, pct float64) Point {
	if pct > 1 {
		pct = 0
	} else if pct < 0 {
		pct = 1
	}
	from, to := pct, pct+TrimWindow
	if to > 1 {
		from, to = 1-TrimWindow, 1
	}
	sub := Trim(p, from, to)
	if sub.Empty() {
		list := p.Anchors()
		if len(list) == 0 {
			return Point{}
		}
		return list[0]
	}
	return Bounds(sub).Center()
}

// Trim returns the part of the path between from and to, both given as
// fractions of the total length of the path.
func Trim(p Path, from, to float64) Path {
	var (
		sub   Path
		total = TotalLength(p)
	)
	if total == 0 {
		return sub
	}
	from = clamp(from, 0, 1) * total
	to = clamp(to, 0, 1) * total
	if from > to {
		return sub
	}
	var (
		offset  float64
		started bool
	)
	p.segments(func(start Point, e Element) bool {
		var (
			end  = e.End()
			dist = start.Distance(end)
			beg  = offset
		)
		offset += dist
		if dist == 0 || offset < from {
			return true
		}
		if beg > to {
			return false
		}
		var (
			t0 = (math.Max(from, beg) - beg) / dist
			t1 = (math.Min(to, offset) - beg) / dist
		)
		switch e.Op {
		case CurveTo:
			var (
				left, _  = splitCubic(start, e.Points[0], e.Points[1], end, t1)
				_, right = splitCubic(left[0], left[1], left[2], left[3], ratio(t0, t1))
			)
			if !started {
				sub.MoveTo(right[0])
				started = true
			}
			sub.CurveTo(right[3], right[1], right[2])
		default:
			if !started {
				sub.MoveTo(start.lerp(end, t0))
				started = true
			}
			sub.LineTo(start.lerp(end, t1))
		}
		return offset < to
	})
	return sub
}

// Bounds returns the bounding box of the anchor and control points of the
// path.
func Bounds(p Path) Rect {
	var (
		rec   Rect
		first = true
	)
	add := func(pt Point) {
		if first {
			rec = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		rec = rec.extend(pt)
	}
	for _, e := range p.Elements {
		switch e.Op {
		case Close:
		case CurveTo:
			for _, pt := range e.Points {
				add(pt)
			}
		default:
			add(e.End())
		}
	}
	return rec
}

func ratio(t0, t1 float64) float64 {
	if t1 == 0 {
		return 0
	}
	return t0 / t1
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
