package charts

type Serie struct {
	Title  string
	Points []DataPoint
}

func NewSerie(title string, values ...float64) Serie {
	s := Serie{
		Title:  title,
		Points: make([]DataPoint, 0, len(values)),
	}
	for _, v := range values {
		s.Points = append(s.Points, StandardPoint(v))
	}
	return s
}

func (s Serie) Len() int {
	return len(s.Points)
}

// WithoutZero returns a copy of the serie where points with a zero value are
// flagged as ignored.
func (s Serie) WithoutZero() Serie {
	x := Serie{
		Title:  s.Title,
		Points: make([]DataPoint, len(s.Points)),
	}
	for i, pt := range s.Points {
		if pt.isZero() {
			pt = pt.Ignored()
		}
		x.Points[i] = pt
	}
	return x
}
