package charts

import (
	"math"
)

// Readout is the result of resolving a touch against one serie.
type Readout struct {
	Serie    int
	Title    string
	Index    int
	Point    DataPoint
	Location Point
	Marker   Point
}

// ResolvePointAligned finds the point the closest to x on a layout where the
// points are spread over count-1 segments. Ignored points and touches out of
// the serie are reported as no match.
func ResolvePointAligned(x float64, points []DataPoint, vp Viewport, min, rg float64) (int, Point, bool) {
	var (
		count = len(points)
		index int
	)
	switch {
	case count == 0:
		return 0, Point{}, false
	case count == 1:
		if x < 0 || x > vp.Width {
			return 0, Point{}, false
		}
	default:
		step := vp.Width / float64(count-1)
		if step == 0 {
			return 0, Point{}, false
		}
		index = int(math.Floor((x + step/2) / step))
	}
	if index < 0 || index >= count || points[index].Ignore {
		return 0, Point{}, false
	}
	pt := PlotPoint(points[index].Top(), index, count, vp, min, rg)
	return index, pt, true
}

// ResolveBucket finds the bucket under x when the width is divided in as many
// buckets as points.
func ResolveBucket(x float64, points []DataPoint, vp Viewport, min, rg float64) (int, Point, bool) {
	var (
		count = len(points)
		step  = BucketWidth(count, vp.Width)
	)
	if step == 0 {
		return 0, Point{}, false
	}
	index := int(math.Floor(x / step))
	if index < 0 || index >= count || points[index].Ignore {
		return 0, Point{}, false
	}
	pt := PlotPointWithBarOffset(points[index].Top(), index, count, vp, min, rg)
	return index, pt, true
}

// ResolveMarkerLocation returns the point of the path under the touch,
// following the path instead of snapping to the data points.
func ResolveMarkerLocation(touch Point, p Path) Point {
	return PointAtPercentage(p, PercentageAt(p, touch.X))
}

// ResolveSeries resolves x independently against every serie. Series without
// a match are left out of the result.
func ResolveSeries(x float64, series []Serie, kind Kind, vp Viewport, vr ValueRange) []Readout {
	var (
		list    []Readout
		resolve = ResolvePointAligned
		open    = kind.Open()
	)
	if kind.Bucket() {
		resolve = ResolveBucket
	}
	for i, s := range series {
		index, loc, ok := resolve(x, s.Points, vp, vr.Min, vr.Range)
		if !ok {
			continue
		}
		pat := BuildPath(s.Points, open, vp, vr.Min, vr.Range)
		list = append(list, Readout{
			Serie:    i,
			Title:    s.Title,
			Index:    index,
			Point:    s.Points[index],
			Location: loc,
			Marker:   ResolveMarkerLocation(NewPoint(x, loc.Y), pat),
		})
	}
	return list
}
