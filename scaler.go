package charts

import (
	"fmt"
	"math"
)

// Epsilon is added to every range so that a serie of equal values never
// produces a zero division when mapped to the viewport.
const Epsilon = 0.001

type baseKind int

const (
	baseMinimum baseKind = iota
	baseZero
	baseFloor
)

// Baseline defines the value mapped to the bottom of the viewport.
type Baseline struct {
	kind  baseKind
	floor float64
}

var (
	MinimumValue = Baseline{kind: baseMinimum}
	Zero         = Baseline{kind: baseZero}
)

func MinimumWithFloor(x float64) Baseline {
	return Baseline{
		kind:  baseFloor,
		floor: x,
	}
}

func (b Baseline) apply(min float64) float64 {
	switch b.kind {
	case baseZero:
		return 0
	case baseFloor:
		return math.Min(min, b.floor)
	default:
		return min
	}
}

func (b Baseline) String() string {
	switch b.kind {
	case baseZero:
		return "zero"
	case baseFloor:
		return fmt.Sprintf("floor(%g)", b.floor)
	default:
		return "minimum"
	}
}

type topKind int

const (
	topMaximum topKind = iota
	topFixed
)

// Topline defines the value mapped to the top of the viewport.
type Topline struct {
	kind  topKind
	fixed float64
}

var MaximumValue = Topline{kind: topMaximum}

func Fixed(x float64) Topline {
	return Topline{
		kind:  topFixed,
		fixed: x,
	}
}

func (t Topline) apply(max float64) float64 {
	switch t.kind {
	case topFixed:
		return math.Max(max, t.fixed)
	default:
		return max
	}
}

func (t Topline) String() string {
	switch t.kind {
	case topFixed:
		return fmt.Sprintf("fixed(%g)", t.fixed)
	default:
		return "maximum"
	}
}

type ValueRange struct {
	Min   float64
	Max   float64
	Range float64
}

func emptyRange() ValueRange {
	return ValueRange{
		Range: Epsilon,
	}
}

// Resolve computes the value range of points under the given policies.
// Ignored points do not contribute. When no point contributes, the range
// {0, 0, Epsilon} is returned whatever the policies are.
func Resolve(points []DataPoint, base Baseline, top Topline) ValueRange {
	min, max, ok := extent(points)
	if !ok {
		return emptyRange()
	}
	return makeRange(min, max, base, top)
}

// ResolveAll resolves the range shared by all the series: the minimum of the
// minimums and the maximum of the maximums, before applying the policies.
func ResolveAll(series []Serie, base Baseline, top Topline) ValueRange {
	var (
		min, max float64
		found    bool
	)
	for _, s := range series {
		lo, hi, ok := extent(s.Points)
		if !ok {
			continue
		}
		if !found {
			min, max, found = lo, hi, true
			continue
		}
		min = math.Min(min, lo)
		max = math.Max(max, hi)
	}
	if !found {
		return emptyRange()
	}
	return makeRange(min, max, base, top)
}

func makeRange(min, max float64, base Baseline, top Topline) ValueRange {
	vr := ValueRange{
		Min: base.apply(min),
		Max: top.apply(max),
	}
	vr.Range = vr.Max - vr.Min + Epsilon
	return vr
}

func extent(points []DataPoint) (float64, float64, bool) {
	var (
		min, max float64
		found    bool
	)
	for _, pt := range points {
		if pt.Ignore {
			continue
		}
		lo, hi := pt.Bottom(), pt.Top()
		if !found {
			min, max, found = lo, hi, true
			continue
		}
		min = math.Min(min, lo)
		max = math.Max(max, hi)
	}
	return min, max, found
}

// ValueY maps v from [min, min+rg] to [height, 0].
func ValueY(v, height, min, rg float64) float64 {
	if rg == 0 {
		return height
	}
	return height - (v-min)/rg*height
}

// PlotPoint places the point at index on a layout where count points are
// spread over count-1 segments.
func PlotPoint(v float64, index, count int, vp Viewport, min, rg float64) Point {
	checkCount(count)
	var x float64
	if count > 1 {
		x = vp.Width / float64(count-1) * float64(index)
	}
	return NewPoint(x, ValueY(v, vp.Height, min, rg))
}

// PlotPointWithBarOffset places the point at index in the center of its
// bucket, the width being divided in count equal buckets.
func PlotPointWithBarOffset(v float64, index, count int, vp Viewport, min, rg float64) Point {
	var (
		size = BucketWidth(count, vp.Width)
		x    = size*float64(index) + size/2
	)
	return NewPoint(x, ValueY(v, vp.Height, min, rg))
}

func BucketWidth(count int, width float64) float64 {
	checkCount(count)
	if count == 0 {
		return 0
	}
	return width / float64(count)
}

// BarRect returns the rectangle of the bar at index. width is the fraction of
// the bucket used by the bar, the bar being centered in its bucket.
func BarRect(v float64, index, count int, vp Viewport, min, rg, width float64) Rect {
	if width <= 0 {
		width = 1
	}
	var (
		size = BucketWidth(count, vp.Width)
		w    = size * clamp(width, 0, 1)
		o    = (size - w) / 2
		x    = size*float64(index) + o
		y    = ValueY(v, vp.Height, min, rg)
		b    = ValueY(math.Max(min, 0), vp.Height, min, rg)
	)
	if y > b {
		y, b = b, y
	}
	return Rect{
		Min: NewPoint(x, y),
		Max: NewPoint(x+w, b),
	}
}

func checkCount(count int) {
	if count < 0 {
		panic(fmt.Sprintf("charts: negative point count %d", count))
	}
}
