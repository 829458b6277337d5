package charts

import (
	"fmt"

	"github.com/midbel/slices"
)

type LineType int

const (
	Straight LineType = iota
	Curved
	Stepped
)

func (t LineType) String() string {
	switch t {
	case Straight:
		return "straight"
	case Curved:
		return "curved"
	case Stepped:
		return "stepped"
	default:
		return "unknown"
	}
}

func ParseLineType(str string) (LineType, error) {
	switch str {
	case "", "straight", "line":
		return Straight, nil
	case "curved", "cubic", "curve":
		return Curved, nil
	case "stepped", "step":
		return Stepped, nil
	default:
		return Straight, fmt.Errorf("%s: unknown line type", str)
	}
}

type Kind int

const (
	StraightOpen Kind = iota
	CurvedOpen
	StraightFilled
	CurvedFilled
	StraightBand
	CurvedBand
	StraightBucketSpaced
	CurvedBucketSpaced
	SteppedOpen
	SteppedFilled
)

func (k Kind) String() string {
	switch k {
	case StraightOpen:
		return "straight-open"
	case CurvedOpen:
		return "curved-open"
	case StraightFilled:
		return "straight-filled"
	case CurvedFilled:
		return "curved-filled"
	case StraightBand:
		return "straight-band"
	case CurvedBand:
		return "curved-band"
	case StraightBucketSpaced:
		return "straight-bucket"
	case CurvedBucketSpaced:
		return "curved-bucket"
	case SteppedOpen:
		return "stepped-open"
	case SteppedFilled:
		return "stepped-filled"
	default:
		return "unknown"
	}
}

func (k Kind) Filled() bool {
	return k == StraightFilled || k == CurvedFilled || k == SteppedFilled
}

func (k Kind) Band() bool {
	return k == StraightBand || k == CurvedBand
}

func (k Kind) Bucket() bool {
	return k == StraightBucketSpaced || k == CurvedBucketSpaced
}

// Open returns the kind tracing the same line without fill nor band.
func (k Kind) Open() Kind {
	switch k {
	case StraightFilled, StraightBand:
		return StraightOpen
	case CurvedFilled, CurvedBand:
		return CurvedOpen
	case SteppedFilled:
		return SteppedOpen
	default:
		return k
	}
}

func (k Kind) LineType() LineType {
	switch k {
	case CurvedOpen, CurvedFilled, CurvedBand, CurvedBucketSpaced:
		return Curved
	case SteppedOpen, SteppedFilled:
		return Stepped
	default:
		return Straight
	}
}

// KindFor selects the path kind matching a line type and its decoration. A
// band wins over a fill, a fill wins over bucket spacing. Stepped lines have
// no band nor bucket variant and fall back to straight ones.
func KindFor(line LineType, fill, band, bucket bool) Kind {
	curved := line == Curved
	switch {
	case band && curved:
		return CurvedBand
	case band:
		return StraightBand
	case fill && curved:
		return CurvedFilled
	case fill && line == Stepped:
		return SteppedFilled
	case fill:
		return StraightFilled
	case bucket && curved:
		return CurvedBucketSpaced
	case bucket:
		return StraightBucketSpaced
	case curved:
		return CurvedOpen
	case line == Stepped:
		return SteppedOpen
	default:
		return StraightOpen
	}
}

// BuildPath traces the points in the viewport. Ignored points are skipped but
// keep their slot. If every point is ignored, the returned path is empty.
func BuildPath(points []DataPoint, kind Kind, vp Viewport, min, rg float64) Path {
	var (
		pat   Path
		line  = kind.LineType()
		upper = placePoints(points, kind, vp, min, rg, DataPoint.Top)
	)
	if len(upper) == 0 {
		return pat
	}
	if kind.Bucket() {
		fst := NewPoint(0, slices.Fst(upper).Y)
		lst := NewPoint(vp.Width, slices.Lst(upper).Y)
		upper = slices.Prepend(fst, append(upper, lst))
	}
	pat.MoveTo(slices.Fst(upper))
	trace(&pat, upper, line)

	switch {
	case kind.Filled():
		var (
			fst = slices.Fst(upper)
			lst = slices.Lst(upper)
		)
		pat.LineTo(NewPoint(lst.X, vp.Height))
		pat.LineTo(NewPoint(fst.X, vp.Height))
		pat.Close()
	case kind.Band():
		lower := placePoints(points, kind, vp, min, rg, DataPoint.Bottom)
		lower = slices.Reverse(lower)
		pat.LineTo(slices.Fst(lower))
		trace(&pat, lower, line)
		pat.Close()
	}
	return pat
}

func placePoints(points []DataPoint, kind Kind, vp Viewport, min, rg float64, value func(DataPoint) float64) []Point {
	place := PlotPoint
	if kind.Bucket() {
		place = PlotPointWithBarOffset
	}
	list := make([]Point, 0, len(points))
	for i, pt := range points {
		if pt.Ignore {
			continue
		}
		list = append(list, place(value(pt), i, len(points), vp, min, rg))
	}
	return list
}

// trace connects the points of list to the path, the first point being the
// current point of the path.
func trace(pat *Path, list []Point, line LineType) {
	if len(list) == 0 {
		return
	}
	ori := slices.Fst(list)
	for _, pos := range slices.Rest(list) {
		switch line {
		case Curved:
			ctrl1, ctrl2 := controlPoints(ori, pos)
			pat.CurveTo(pos, ctrl1, ctrl2)
		case Stepped:
			mid := ori
			mid.X += (pos.X - ori.X) / 2
			pat.LineTo(mid)
			mid.Y = pos.Y
			pat.LineTo(mid)
			pat.LineTo(pos)
		default:
			pat.LineTo(pos)
		}
		ori = pos
	}
}
