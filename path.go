package charts

type Op int

const (
	MoveTo Op = iota
	LineTo
	CurveTo
	Close
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "move"
	case LineTo:
		return "line"
	case CurveTo:
		return "curve"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Element is a single path instruction. MoveTo and LineTo only use the first
// point. CurveTo stores the two control points then the end point.
type Element struct {
	Op     Op
	Points [3]Point
}

// End returns the anchor point reached by the element.
func (e Element) End() Point {
	switch e.Op {
	case CurveTo:
		return e.Points[2]
	default:
		return e.Points[0]
	}
}

type Path struct {
	Elements []Element
}

func (p *Path) MoveTo(pt Point) {
	p.Elements = append(p.Elements, Element{Op: MoveTo, Points: [3]Point{pt}})
}

func (p *Path) LineTo(pt Point) {
	p.Elements = append(p.Elements, Element{Op: LineTo, Points: [3]Point{pt}})
}

func (p *Path) CurveTo(pt, ctrl1, ctrl2 Point) {
	p.Elements = append(p.Elements, Element{Op: CurveTo, Points: [3]Point{ctrl1, ctrl2, pt}})
}

func (p *Path) Close() {
	p.Elements = append(p.Elements, Element{Op: Close})
}

func (p Path) Empty() bool {
	return len(p.Elements) == 0
}

func (p Path) Len() int {
	return len(p.Elements)
}

// Current returns the last anchor point of the path.
func (p Path) Current() (Point, bool) {
	if len(p.Elements) == 0 {
		return Point{}, false
	}
	var (
		start Point
		curr  Point
	)
	for _, e := range p.Elements {
		switch e.Op {
		case MoveTo:
			start = e.End()
			curr = start
		case Close:
			curr = start
		default:
			curr = e.End()
		}
	}
	return curr, true
}

// Anchors returns the anchor points of the path in order, control points
// excluded.
func (p Path) Anchors() []Point {
	list := make([]Point, 0, len(p.Elements))
	for _, e := range p.Elements {
		if e.Op == Close {
			continue
		}
		list = append(list, e.End())
	}
	return list
}

func (p Path) Clone() Path {
	if p.Elements == nil {
		return Path{}
	}
	x := Path{
		Elements: make([]Element, len(p.Elements)),
	}
	copy(x.Elements, p.Elements)
	return x
}

// segments walks the drawing instructions of the path giving each of them
// the point it starts from. Close elements are reported as a line back to the
// start of the current sub path.
func (p Path) segments(fn func(from Point, e Element) bool) {
	var start, curr Point
	for _, e := range p.Elements {
		switch e.Op {
		case MoveTo:
			start = e.End()
			curr = start
			continue
		case Close:
			e = Element{Op: LineTo, Points: [3]Point{start}}
		}
		if !fn(curr, e) {
			return
		}
		curr = e.End()
	}
}
