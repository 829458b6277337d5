package dash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/chartgeom"
)

var ErrLineType = errors.New("unknown line type")

const (
	BaseMinimum = "minimum"
	BaseZero    = "zero"
	BaseFloor   = "floor"

	TopMaximum = "maximum"
	TopFixed   = "fixed"
)

func parseBaseline(str string, floor float64) (charts.Baseline, error) {
	switch strings.ToLower(str) {
	case "", BaseMinimum:
		return charts.MinimumValue, nil
	case BaseZero:
		return charts.Zero, nil
	case BaseFloor:
		return charts.MinimumWithFloor(floor), nil
	default:
		return charts.MinimumValue, fmt.Errorf("%s: unknown baseline", str)
	}
}

func parseTopline(str string, fixed float64) (charts.Topline, error) {
	switch strings.ToLower(str) {
	case "", TopMaximum:
		return charts.MaximumValue, nil
	case TopFixed:
		return charts.Fixed(fixed), nil
	default:
		return charts.MaximumValue, fmt.Errorf("%s: unknown topline", str)
	}
}

func parseLine(str string) (charts.LineType, error) {
	if str == "" {
		return charts.Straight, nil
	}
	line, err := charts.ParseLineType(str)
	if err != nil {
		return line, fmt.Errorf("%s: %w", str, ErrLineType)
	}
	return line, nil
}
