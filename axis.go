package charts

import (
	"github.com/aclements/go-moremath/scale"
)

type Tick struct {
	Value float64
	Pos   float64
}

// Ticks returns at most max "nice" values within the range with their
// vertical position in a viewport of the given height.
func Ticks(vr ValueRange, height float64, max int) []Tick {
	if max <= 0 {
		return nil
	}
	var (
		lin      = scale.Linear{Min: vr.Min, Max: vr.Min + vr.Range}
		major, _ = lin.Ticks(scale.TickOptions{Max: max})
		list     = make([]Tick, 0, len(major))
	)
	for _, v := range major {
		list = append(list, Tick{
			Value: v,
			Pos:   ValueY(v, height, vr.Min, vr.Range),
		})
	}
	return list
}

// Buckets returns the center of each of the count buckets of the width.
func Buckets(count int, width float64) []float64 {
	var (
		size = BucketWidth(count, width)
		list = make([]float64, count)
	)
	for i := range list {
		list[i] = size*float64(i) + size/2
	}
	return list
}
