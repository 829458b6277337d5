package dash

import (
	"errors"
	"strings"
	"testing"

	"github.com/midbel/chartgeom"
	"github.com/stretchr/testify/require"
)

const dashboard = `
title: temperatures
width: 400
height: 300
padding:
  top: 10
  left: 40
baseline: floor
floor: -5
topline: fixed
fixed: 40
line: curved
fill: true
ignore-zero: true
colors: [ff0000, "#00ff00", blue]
opacity: 0.6
series:
  - file: data/brussels.csv
    title: brussels
    columns: "1"
    header: true
  - title: inline
    content: |
      1,2
      3,4
    columns: "0-1"
`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(dashboard))
	require.NoError(t, err)
	require.Equal(t, "temperatures", d.Title)
	require.Equal(t, DefaultPath, d.Path)
	require.Equal(t, 400.0, d.Width)
	require.Equal(t, 300.0, d.Height)
	require.Len(t, d.Series, 2)

	cfg, err := d.Config()
	require.NoError(t, err)
	require.Equal(t, charts.MinimumWithFloor(-5), cfg.Baseline)
	require.Equal(t, charts.Fixed(40), cfg.Topline)
	require.Equal(t, charts.CurvedFilled, cfg.Kind())
	require.True(t, cfg.IgnoreZero)

	sources, err := d.Sources()
	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.IsType(t, File{}, sources[0])
	require.IsType(t, LocalData{}, sources[1])
	require.Equal(t, "brussels", sources[0].Name())

	style := d.Style()
	require.Equal(t, charts.Palette{"#ff0000", "#00ff00", "blue"}, style.Fill.List)
	require.Equal(t, 0.6, style.Fill.Opacity)

	ch, err := d.Chart(nil)
	require.NoError(t, err)
	require.Equal(t, 360.0, ch.DrawingWidth())
	require.Equal(t, 290.0, ch.DrawingHeight())
}

func TestLoadDefault(t *testing.T) {
	d, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), d)

	cfg, err := d.Config()
	require.NoError(t, err)
	require.Equal(t, charts.DefaultConfig(), cfg)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		Name string
		Dash Dashboard
		Err  error
	}{
		{Name: "line", Dash: Dashboard{Line: "zigzag"}, Err: ErrLineType},
		{Name: "baseline", Dash: Dashboard{Baseline: "bottom"}},
		{Name: "topline", Dash: Dashboard{Topline: "ceiling"}},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := tt.Dash.Config()
			require.Error(t, err)
			if tt.Err != nil {
				require.True(t, errors.Is(err, tt.Err))
			}
		})
	}
	_, err := Input{Title: "nothing"}.Source()
	require.Error(t, err)

	_, err = Input{File: "data.csv", Columns: "a-b"}.Source()
	require.True(t, errors.Is(err, ErrIndex))
}

const tree = `
title: budget
width: 200
nodes:
  - label: housing
    children:
      - label: rent
        value: 800
      - label: energy
        value: 200
  - label: food
    value: 500
  - label: leisure
    value: 0
`

func TestLoadPie(t *testing.T) {
	p, err := LoadPie(strings.NewReader(tree))
	require.NoError(t, err)
	require.Equal(t, "budget", p.Title)
	require.Equal(t, 200.0, p.Width)
	require.Equal(t, DefaultHeight, p.Height)

	ch := p.Chart()
	require.Len(t, ch.Nodes, 3)
	require.Equal(t, 1000.0, ch.Nodes[0].Value)
	require.Len(t, ch.Nodes[0].Children, 2)

	wedges := ch.Wedges()
	require.InDelta(t, 2*3.141592653589793*1000/1500, wedges[0].Sweep, 1e-9)
	require.Zero(t, wedges[2].Sweep)

	_, err = LoadPie(strings.NewReader("nodes:\n  - label: bad\n    value: -1\n"))
	require.Error(t, err)
}
