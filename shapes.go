package charts

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

var DefaultSize float64 = 4

type PointFunc func(*svg.SVG, Point, string)

func GetPointFunc(name string) (PointFunc, error) {
	switch name {
	case "", "circle":
		return GetCircle, nil
	case "square":
		return GetSquare, nil
	case "cross":
		return GetCross, nil
	default:
		return nil, fmt.Errorf("%s: unknown marker", name)
	}
}

func GetCircle(el *svg.SVG, pos Point, color string) {
	el.Circle(round(pos.X), round(pos.Y), round(DefaultSize/2), "fill:"+color)
}

func GetSquare(el *svg.SVG, pos Point, color string) {
	half := DefaultSize / 2
	el.Rect(round(pos.X-half), round(pos.Y-half), round(DefaultSize), round(DefaultSize), "fill:"+color)
}

func GetCross(el *svg.SVG, pos Point, color string) {
	half := DefaultSize
	el.Line(round(pos.X-half), round(pos.Y), round(pos.X+half), round(pos.Y), "stroke:"+color)
	el.Line(round(pos.X), round(pos.Y-half), round(pos.X), round(pos.Y+half), "stroke:"+color)
}

func round(f float64) int {
	return int(math.Round(f))
}
