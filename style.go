package charts

import (
	"fmt"
)

type Style struct {
	Line struct {
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
		List    Palette
	}
	Text struct {
		Size  float64
		Color string
	}
	Marker PointFunc
}

func DefaultStyle() Style {
	var s Style
	s.Line.Width = 1.5
	s.Line.Opacity = 1
	s.Fill.Opacity = 0.4
	s.Fill.List = Tableau10
	s.Text.Size = FontSize
	s.Text.Color = "#444"
	s.Marker = GetCircle
	return s
}

func (s Style) stroke(i int) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-opacity:%g", s.Fill.List.Color(i), s.Line.Width, s.Line.Opacity)
}

func (s Style) fill(i int) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%g;stroke:%s;stroke-width:%g", s.Fill.List.Color(i), s.Fill.Opacity, s.Fill.List.Color(i), s.Line.Width)
}

func (s Style) text() string {
	return fmt.Sprintf("font-size:%gpx;fill:%s", s.Text.Size, s.Text.Color)
}
