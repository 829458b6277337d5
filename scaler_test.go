package charts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestResolve(t *testing.T) {
	tests := []struct {
		Name   string
		Points []DataPoint
		Base   Baseline
		Top    Topline
		Want   ValueRange
	}{
		{
			Name:   "equal-values",
			Points: NewSerie("", 5, 5, 5).Points,
			Base:   MinimumValue,
			Top:    MaximumValue,
			Want:   ValueRange{Min: 5, Max: 5, Range: 0.001},
		},
		{
			Name:   "equal-values-zero",
			Points: NewSerie("", 5, 5, 5).Points,
			Base:   Zero,
			Top:    MaximumValue,
			Want:   ValueRange{Min: 0, Max: 5, Range: 5.001},
		},
		{
			Name:   "floor-below",
			Points: NewSerie("", 10, 20).Points,
			Base:   MinimumWithFloor(5),
			Top:    MaximumValue,
			Want:   ValueRange{Min: 5, Max: 20, Range: 15.001},
		},
		{
			Name:   "floor-above",
			Points: NewSerie("", 10, 20).Points,
			Base:   MinimumWithFloor(15),
			Top:    MaximumValue,
			Want:   ValueRange{Min: 10, Max: 20, Range: 10.001},
		},
		{
			Name:   "fixed-top",
			Points: NewSerie("", 10, 20).Points,
			Base:   MinimumValue,
			Top:    Fixed(50),
			Want:   ValueRange{Min: 10, Max: 50, Range: 40.001},
		},
		{
			Name:   "ranged",
			Points: []DataPoint{RangedPoint(10, 2), RangedPoint(-3, 8)},
			Base:   MinimumValue,
			Top:    MaximumValue,
			Want:   ValueRange{Min: -3, Max: 10, Range: 13.001},
		},
		{
			Name:   "ignored",
			Points: []DataPoint{StandardPoint(1), StandardPoint(100).Ignored(), StandardPoint(3)},
			Base:   MinimumValue,
			Top:    MaximumValue,
			Want:   ValueRange{Min: 1, Max: 3, Range: 2.001},
		},
		{
			Name: "empty",
			Base: Zero,
			Top:  Fixed(100),
			Want: ValueRange{Range: Epsilon},
		},
		{
			Name:   "all-ignored",
			Points: []DataPoint{IgnoredPoint(), IgnoredPoint()},
			Base:   MinimumWithFloor(-10),
			Top:    MaximumValue,
			Want:   ValueRange{Range: Epsilon},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := Resolve(tt.Points, tt.Base, tt.Top)
			if diff := cmp.Diff(tt.Want, got, approx); diff != "" {
				t.Errorf("range mismatched (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAll(t *testing.T) {
	series := []Serie{
		NewSerie("a", 1, 2),
		NewSerie("b", 5, -1),
		{Title: "c"},
	}
	got := ResolveAll(series, MinimumValue, MaximumValue)
	want := ValueRange{Min: -1, Max: 5, Range: 6.001}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("range mismatched (-want +got):\n%s", diff)
	}
	got = ResolveAll(nil, Zero, MaximumValue)
	require.Equal(t, ValueRange{Range: Epsilon}, got)
}

func TestPlotPointBounds(t *testing.T) {
	var (
		ser = NewSerie("", -4, 12, 7, 0, 33, 33, -8)
		vp  = NewViewport(120, 80)
	)
	for _, base := range []Baseline{MinimumValue, Zero, MinimumWithFloor(-20)} {
		vr := Resolve(ser.Points, base, MaximumValue)
		for i, pt := range ser.Points {
			pos := PlotPoint(pt.Value, i, ser.Len(), vp, vr.Min, vr.Range)
			if pos.X < 0 || pos.X > vp.Width {
				t.Errorf("%s: x out of viewport at %d: %f", base, i, pos.X)
			}
			if pt.Value < vr.Min {
				if pos.Y <= vp.Height {
					t.Errorf("%s: y not below the baseline at %d: %f", base, i, pos.Y)
				}
				continue
			}
			if pos.Y < 0 || pos.Y > vp.Height {
				t.Errorf("%s: y out of viewport at %d: %f", base, i, pos.Y)
			}
		}
	}
}

func TestPlotPoint(t *testing.T) {
	vp := NewViewport(100, 100)

	got := PlotPoint(5, 2, 5, vp, 0, 10)
	require.Equal(t, NewPoint(50, 50), got)

	got = PlotPoint(10, 0, 1, vp, 0, 10)
	require.Equal(t, NewPoint(0, 0), got)

	got = PlotPoint(10, 0, 0, vp, 0, 0)
	require.Equal(t, NewPoint(0, 100), got)

	require.Panics(t, func() {
		PlotPoint(1, 0, -1, vp, 0, 1)
	})
}

func TestPlotPointWithBarOffset(t *testing.T) {
	vp := NewViewport(100, 100)
	var xs []float64
	for i := 0; i < 4; i++ {
		xs = append(xs, PlotPointWithBarOffset(0, i, 4, vp, 0, 10).X)
	}
	require.Equal(t, []float64{12.5, 37.5, 62.5, 87.5}, xs)
	require.Equal(t, xs, Buckets(4, vp.Width))
	require.Zero(t, BucketWidth(0, vp.Width))
}

func TestBarRect(t *testing.T) {
	vp := NewViewport(100, 100)

	got := BarRect(10, 1, 4, vp, 0, 20, 0.5)
	want := Rect{
		Min: NewPoint(31.25, 50),
		Max: NewPoint(43.75, 100),
	}
	require.Equal(t, want, got)

	got = BarRect(10, 1, 4, vp, 0, 20, 1.5)
	want = Rect{
		Min: NewPoint(25, 50),
		Max: NewPoint(50, 100),
	}
	require.Equal(t, want, got)

	got = BarRect(-10, 0, 2, vp, -20, 40, 0)
	want = Rect{
		Min: NewPoint(0, 50),
		Max: NewPoint(50, 75),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("negative bar mismatched (-want +got):\n%s", diff)
	}
}
