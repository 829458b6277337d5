package charts

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const FontSize = 12.0

// String returns the path in the SVG path data syntax.
func (p Path) String() string {
	var str strings.Builder
	for i, e := range p.Elements {
		if i > 0 {
			str.WriteByte(' ')
		}
		switch e.Op {
		case MoveTo:
			str.WriteString("M")
			writePoint(&str, e.Points[0])
		case LineTo:
			str.WriteString("L")
			writePoint(&str, e.Points[0])
		case CurveTo:
			str.WriteString("C")
			writePoint(&str, e.Points[0])
			str.WriteByte(' ')
			writePoint(&str, e.Points[1])
			str.WriteByte(' ')
			writePoint(&str, e.Points[2])
		case Close:
			str.WriteString("Z")
		}
	}
	return str.String()
}

func writePoint(str *strings.Builder, pt Point) {
	str.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
	str.WriteByte(',')
	str.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
}

// WedgeData returns the SVG path data of a wedge drawn around center between
// the inner and outer radius. An inner radius of zero gives a pie slice.
func WedgeData(w PieWedge, center Point, inner, outer float64) string {
	if w.Sweep <= 0 || outer <= 0 {
		return ""
	}
	sweep := w.Sweep
	if sweep >= fullcircle {
		sweep = fullcircle - 1e-6
	}
	var (
		large = 0
		pos1  = getPosFromAngle(center, w.Start, outer)
		pos2  = getPosFromAngle(center, w.Start+sweep, outer)
		pos3  = getPosFromAngle(center, w.Start+sweep, inner)
		pos4  = getPosFromAngle(center, w.Start, inner)
		str   strings.Builder
	)
	if sweep > math.Pi {
		large = 1
	}
	fmt.Fprintf(&str, "M%g,%g A%g,%g 0 %d 1 %g,%g", pos1.X, pos1.Y, outer, outer, large, pos2.X, pos2.Y)
	if inner > 0 {
		fmt.Fprintf(&str, " L%g,%g A%g,%g 0 %d 0 %g,%g", pos3.X, pos3.Y, inner, inner, large, pos4.X, pos4.Y)
	} else {
		fmt.Fprintf(&str, " L%g,%g", center.X, center.Y)
	}
	str.WriteString(" Z")
	return str.String()
}

func getPosFromAngle(center Point, angle, radius float64) Point {
	return NewPoint(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}

// Render writes the chart as a SVG document. Readouts, if any, are drawn as a
// vertical rule with a marker on each line.
func (c *Chart) Render(w io.Writer, style Style, readouts []Readout) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	var (
		vp    = c.Viewport()
		paths = c.Paths(vp)
		kind  = c.Kind()
		el    = svg.New(bw)
	)
	el.Start(round(c.Width), round(c.Height))
	if c.Title != "" {
		el.Title(c.Title)
	}
	el.Gtransform(fmt.Sprintf("translate(%g,%g)", c.Padding.Left, c.Padding.Top))

	el.Line(0, 0, 0, round(vp.Height), "stroke:black")
	el.Line(0, round(vp.Height), round(vp.Width), round(vp.Height), "stroke:black")
	for _, t := range c.Ticks(vp, 7) {
		y := round(t.Pos)
		el.Line(-4, y, 0, y, "stroke:black")
		el.Line(0, y, round(vp.Width), y, "stroke:black;stroke-opacity:0.1")
		el.Text(-6, y, strconv.FormatFloat(t.Value, 'f', -1, 64), style.text(), "text-anchor=\"end\"", "dominant-baseline=\"middle\"")
	}
	for i, bars := range c.Bars(vp) {
		for _, r := range bars {
			el.Rect(round(r.Min.X), round(r.Min.Y), round(r.Width()), round(r.Height()), style.fill(i))
		}
	}
	for i, p := range paths {
		if p.Empty() {
			continue
		}
		if kind.Filled() || kind.Band() {
			el.Path(p.String(), style.fill(i))
		} else {
			el.Path(p.String(), style.stroke(i))
		}
	}
	for i, x := range c.labelPositions(vp) {
		pt := c.Series[0].Points[i]
		if pt.Label == "" {
			continue
		}
		el.Text(round(x), round(vp.Height+FontSize+4), pt.Label, style.text(), "text-anchor=\"middle\"")
	}
	if len(readouts) > 0 {
		x := round(readouts[0].Marker.X)
		el.Line(x, 0, x, round(vp.Height), "stroke:black;stroke-opacity:0.5")
	}
	marker := style.Marker
	if marker == nil {
		marker = GetCircle
	}
	for _, r := range readouts {
		marker(el, r.Marker, style.Fill.List.Color(r.Serie))
		GetCross(el, r.Location, style.Fill.List.Color(r.Serie))
	}
	el.Gend()
	el.End()
}

// labelPositions gives the horizontal position of the labels of the first
// serie.
func (c *Chart) labelPositions(vp Viewport) []float64 {
	if len(c.Series) == 0 {
		return nil
	}
	count := c.Series[0].Len()
	if c.Kind().Bucket() {
		return Buckets(count, vp.Width)
	}
	list := make([]float64, count)
	for i := range list {
		list[i] = PlotPoint(0, i, count, vp, 0, 1).X
	}
	return list
}

// Render writes the pie as a SVG document, one ring per level. The wedges on
// the path given by selected are highlighted.
func (c PieChart) Render(w io.Writer, style Style, selected []int) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	var (
		rect   = c.Rect()
		center = rect.Center()
		wedges = c.Wedges()
		levels = Levels(wedges)
		radius = math.Min(rect.Width(), rect.Height()) / 2
		el     = svg.New(bw)
	)
	el.Start(round(c.Width), round(c.Height))
	if c.Title != "" {
		el.Title(c.Title)
	}
	if levels == 0 {
		el.End()
		return
	}
	el.Gtransform(fmt.Sprintf("translate(%g,%g)", c.Padding.Left, c.Padding.Top))
	var (
		ring = radius / float64(levels)
		draw func([]PieNode, []PieWedge, []int, bool)
	)
	draw = func(nodes []PieNode, list []PieWedge, sel []int, onpath bool) {
		for i, wg := range list {
			var (
				inner = ring * float64(wg.Depth)
				outer = inner + ring
				hit   = onpath && len(sel) > 0 && sel[0] == i
				fill  = style.fill(i)
			)
			if hit {
				fill += ";stroke:black;stroke-width:2"
			}
			if d := WedgeData(wg, center, inner, outer); d != "" {
				el.Path(d, fill)
			}
			if label := nodes[i].Label; label != "" && wg.Sweep*(inner+outer)/2 > FontSize {
				pos := wg.Centroid(center, inner, outer)
				el.Text(round(pos.X), round(pos.Y), label, style.text(), "text-anchor=\"middle\"", "dominant-baseline=\"middle\"")
			}
			var rest []int
			if hit {
				rest = sel[1:]
			}
			draw(nodes[i].Children, wg.Children, rest, hit)
		}
	}
	draw(c.Nodes, wedges, selected, true)
	el.Gend()
	el.End()
}
