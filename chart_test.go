package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicks(t *testing.T) {
	vr := ValueRange{Min: 0, Max: 100, Range: 100}
	list := Ticks(vr, 200, 6)
	require.NotEmpty(t, list)
	require.LessOrEqual(t, len(list), 6)
	for i, k := range list {
		require.GreaterOrEqual(t, k.Value, vr.Min)
		require.LessOrEqual(t, k.Value, vr.Min+vr.Range)
		require.InDelta(t, ValueY(k.Value, 200, vr.Min, vr.Range), k.Pos, 1e-9)
		if i > 0 {
			require.Greater(t, k.Value, list[i-1].Value)
			require.Less(t, k.Pos, list[i-1].Pos)
		}
	}
	require.Nil(t, Ticks(vr, 200, 0))
}

func TestPathString(t *testing.T) {
	vp := NewViewport(100, 100)
	tests := []struct {
		Kind Kind
		Want string
	}{
		{Kind: StraightOpen, Want: "M0,100 L100,0"},
		{Kind: CurvedOpen, Want: "M0,100 C50,100 50,0 100,0"},
		{Kind: StraightFilled, Want: "M0,100 L100,0 L100,100 L0,100 Z"},
	}
	for _, tt := range tests {
		pat := BuildPath(NewSerie("", 0, 10).Points, tt.Kind, vp, 0, 10)
		require.Equal(t, tt.Want, pat.String(), tt.Kind.String())
	}
	require.Empty(t, Path{}.String())
}

func TestWedgeData(t *testing.T) {
	var (
		center = NewPoint(50, 50)
		wedges = Allocate([]PieNode{Leaf("a", 1), Leaf("b", 3)})
	)
	str := WedgeData(wedges[0], center, 0, 50)
	require.True(t, strings.HasPrefix(str, "M"))
	require.Contains(t, str, " A50,50 0 0 1 ")
	require.True(t, strings.HasSuffix(str, " L50,50 Z"))

	str = WedgeData(wedges[1], center, 25, 50)
	require.Contains(t, str, " A50,50 0 1 1 ")
	require.Contains(t, str, " A25,25 0 1 0 ")

	require.Empty(t, WedgeData(PieWedge{}, center, 0, 50))
}

func TestChart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Baseline = Zero
	cfg.IgnoreZero = true

	var (
		fst = NewSerie("fst", 2, 0, 6, 8)
		snd = NewSerie("snd", 1, 3, 0, 9)
		ch  = NewChart(cfg, fst, snd)
	)
	ch.Width, ch.Height = 140, 120
	ch.Padding = Padding{Top: 10, Right: 20, Bottom: 10, Left: 20}

	vp := ch.Viewport()
	require.Equal(t, NewViewport(100, 100), vp)

	vr := ch.Range()
	require.Equal(t, 0.0, vr.Min)
	require.Equal(t, 9.0, vr.Max)

	paths := ch.Paths(vp)
	require.Len(t, paths, 2)
	require.Len(t, paths[0].Anchors(), 3)
	require.Len(t, paths[1].Anchors(), 3)
	require.False(t, fst.Points[1].Ignore, "series given to the chart must not be modified")

	ch.Paths(vp)
	hits, misses := ch.caches[0].Stats()
	require.Equal(t, 1, hits)
	require.Equal(t, 1, misses)

	list := ch.Touch(100/3.0, vp)
	require.Len(t, list, 1)
	require.Equal(t, "snd", list[0].Title)
	require.Equal(t, 3.0, list[0].Point.Value)

	var buf bytes.Buffer
	ch.Render(&buf, DefaultStyle(), list)
	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Equal(t, 2, strings.Count(out, "<path"))
	require.Contains(t, out, "<circle")
}

func TestChartBars(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Baseline = Zero
	cfg.Bucket = true
	cfg.IgnoreZero = true

	ch := NewChart(cfg, NewSerie("bars", 5, 10, 0, 20))
	ch.Width, ch.Height = 100, 100

	vp := ch.Viewport()
	bars := ch.Bars(vp)
	require.Len(t, bars, 1)
	require.Len(t, bars[0], 3)
	for i, x := range []float64{2.5, 27.5, 77.5} {
		require.InDelta(t, x, bars[0][i].Min.X, 1e-9)
		require.InDelta(t, 20, bars[0][i].Width(), 1e-9)
		require.InDelta(t, vp.Height, bars[0][i].Max.Y, 1e-9)
	}
	require.Greater(t, bars[0][2].Height(), bars[0][1].Height())
	require.Greater(t, bars[0][1].Height(), bars[0][0].Height())

	var buf bytes.Buffer
	ch.Render(&buf, DefaultStyle(), nil)
	require.Equal(t, 3, strings.Count(buf.String(), "<rect"))

	ch.Bucket = false
	require.Nil(t, ch.Bars(vp))
}

func TestPieChart(t *testing.T) {
	ch := PieChart{
		Width:   120,
		Height:  120,
		Padding: Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Nodes: []PieNode{
			Branch("a", 1, Leaf("x", 1), Leaf("y", 1)),
			Leaf("b", 1),
		},
	}
	labels, ok := ch.Touch(NewPoint(90, 40))
	require.True(t, ok)
	require.Equal(t, []string{"a", "x"}, labels)

	_, ok = ch.Touch(NewPoint(0, 0))
	require.False(t, ok)

	var buf bytes.Buffer
	ch.Render(&buf, DefaultStyle(), []int{0, 0})
	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Equal(t, 4, strings.Count(out, "<path"))
	require.Equal(t, 2, strings.Count(out, "stroke:black;stroke-width:2"))
	for _, label := range []string{"a", "b", "x", "y"} {
		require.Contains(t, out, ">"+label+"</text>")
	}
}

func TestPalette(t *testing.T) {
	list := NewPalette("abc", " 123456 ", "", "steelblue", "#ffffff")
	require.Equal(t, Palette{"#abc", "#123456", "steelblue", "#ffffff"}, list)
	require.Equal(t, "#abc", list.Color(4))
	require.Equal(t, "black", Palette(nil).Color(2))
	require.Len(t, Category10, 10)
	require.Len(t, Tableau10, 10)

	_, err := GetPointFunc("star")
	require.Error(t, err)
}
