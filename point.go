package charts

import (
	"math"
)

type PointKind int

const (
	Standard PointKind = iota
	Ranged
)

// DataPoint is a single value of a serie. Ranged points carry an upper and a
// lower bound instead of a value. Ignored points keep their slot in the serie
// but are skipped when tracing paths and resolving touches.
type DataPoint struct {
	Kind   PointKind
	Value  float64
	Upper  float64
	Lower  float64
	Ignore bool
	Label  string
}

func StandardPoint(v float64) DataPoint {
	return DataPoint{
		Kind:  Standard,
		Value: v,
	}
}

func LabelPoint(label string, v float64) DataPoint {
	pt := StandardPoint(v)
	pt.Label = label
	return pt
}

func RangedPoint(upper, lower float64) DataPoint {
	if upper < lower {
		upper, lower = lower, upper
	}
	return DataPoint{
		Kind:  Ranged,
		Upper: upper,
		Lower: lower,
	}
}

func IgnoredPoint() DataPoint {
	return DataPoint{
		Kind:   Standard,
		Ignore: true,
	}
}

func (d DataPoint) Ignored() DataPoint {
	d.Ignore = true
	return d
}

// Top is the value traced by open and filled paths: the value itself or the
// upper bound of a ranged point.
func (d DataPoint) Top() float64 {
	switch d.Kind {
	case Ranged:
		return d.Upper
	default:
		return d.Value
	}
}

func (d DataPoint) Bottom() float64 {
	switch d.Kind {
	case Ranged:
		return d.Lower
	default:
		return d.Value
	}
}

func (d DataPoint) isZero() bool {
	switch d.Kind {
	case Ranged:
		return d.Upper == 0 && d.Lower == 0
	default:
		return d.Value == 0
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

func (p Point) lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

type Viewport struct {
	Width  float64
	Height float64
}

func NewViewport(w, h float64) Viewport {
	return Viewport{
		Width:  w,
		Height: h,
	}
}

func (v Viewport) Center() Point {
	return NewPoint(v.Width/2, v.Height/2)
}

func (v Viewport) Rect() Rect {
	return Rect{
		Max: NewPoint(v.Width, v.Height),
	}
}

type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return r.Min.lerp(r.Max, 0.5)
}

func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rect) extend(p Point) Rect {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}
