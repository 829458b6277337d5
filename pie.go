package charts

import (
	"math"
)

const (
	fullcircle = 2 * math.Pi
	north      = -math.Pi / 2
	rad2deg    = 180 / math.Pi
)

// PieNode is the input of a pie or doughnut chart. Children are drawn on the
// next ring, sharing the angle of their parent.
type PieNode struct {
	Label    string
	Value    float64
	Children []PieNode
}

func Leaf(label string, v float64) PieNode {
	return PieNode{
		Label: label,
		Value: v,
	}
}

func Branch(label string, v float64, children ...PieNode) PieNode {
	return PieNode{
		Label:    label,
		Value:    v,
		Children: children,
	}
}

// PieWedge is the angular extent allocated to a PieNode, in radians, with
// the wedges of its children. Wedges are indexed like the nodes they are
// derived from.
type PieWedge struct {
	Start    float64
	Sweep    float64
	Depth    int
	Children []PieWedge
}

func (w PieWedge) End() float64 {
	return w.Start + w.Sweep
}

// Centroid returns the middle of the wedge between the inner and outer
// radius, relative to center.
func (w PieWedge) Centroid(center Point, inner, outer float64) Point {
	var (
		angle = w.Start + w.Sweep/2
		rad   = (inner + outer) / 2
	)
	return NewPoint(center.X+rad*math.Cos(angle), center.Y+rad*math.Sin(angle))
}

// Allocate splits the full circle between the nodes proportionally to their
// values, starting at 12 o'clock. Children split the angle of their parent
// proportionally to their own total.
func Allocate(nodes []PieNode) []PieWedge {
	return allocateLevel(nodes, north, fullcircle, 0)
}

func allocateLevel(nodes []PieNode, start, sweep float64, depth int) []PieWedge {
	if len(nodes) == 0 {
		return nil
	}
	var total float64
	for _, n := range nodes {
		total += n.Value
	}
	list := make([]PieWedge, len(nodes))
	for i, n := range nodes {
		var part float64
		if total != 0 {
			part = sweep * n.Value / total
		}
		list[i] = PieWedge{
			Start:    start,
			Sweep:    part,
			Depth:    depth,
			Children: allocateLevel(n.Children, start, part, depth+1),
		}
		start += part
	}
	return list
}

// Levels returns the number of rings needed to draw the wedges.
func Levels(wedges []PieWedge) int {
	var depth int
	for _, w := range wedges {
		if d := Levels(w.Children); d > depth {
			depth = d
		}
	}
	if len(wedges) > 0 {
		depth++
	}
	return depth
}

// TouchDegrees returns the angle of touch around the center of rect, in
// degrees, on the same origin as the allocated wedges: -90 at 12 o'clock
// growing clockwise up to 270.
func TouchDegrees(touch Point, rect Rect) float64 {
	var (
		center  = rect.Center()
		dx      = touch.X - center.X
		dy      = touch.Y - center.Y
		degrees = math.Atan2(-dx, -dy) * rad2deg
	)
	if degrees > 0 {
		return 270 - degrees
	}
	return -90 - degrees
}

// ResolveWedge returns the index of the first wedge containing the angle of
// touch. The distance to the center is not taken into account.
func ResolveWedge(touch Point, rect Rect, wedges []PieWedge) (int, bool) {
	deg := TouchDegrees(touch, rect)
	for i, w := range wedges {
		if w.Sweep == 0 {
			continue
		}
		var (
			beg = w.Start * rad2deg
			end = beg + w.Sweep*rad2deg
		)
		if deg >= beg && deg <= end {
			return i, true
		}
	}
	return 0, false
}

// ResolveLayered resolves touch on a multi layer pie where every level is
// drawn on a ring of equal thickness, the root level being the innermost one.
// It returns the index of the wedge selected at each level down to the ring
// under the touch.
func ResolveLayered(touch Point, rect Rect, wedges []PieWedge) ([]int, bool) {
	var (
		levels = Levels(wedges)
		radius = math.Min(rect.Width(), rect.Height()) / 2
		dist   = touch.Distance(rect.Center())
	)
	if levels == 0 || radius <= 0 || dist > radius {
		return nil, false
	}
	ring := int(dist / (radius / float64(levels)))
	if ring >= levels {
		ring = levels - 1
	}
	var list []int
	for i := 0; i <= ring; i++ {
		x, ok := ResolveWedge(touch, rect, wedges)
		if !ok {
			return nil, false
		}
		list = append(list, x)
		wedges = wedges[x].Children
	}
	return list, true
}
