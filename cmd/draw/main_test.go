package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/midbel/chartgeom"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogReadout(t *testing.T) {
	tests := []struct {
		Name  string
		Point charts.DataPoint
		Want  map[string]float64
	}{
		{
			Name:  "standard",
			Point: charts.StandardPoint(12),
			Want:  map[string]float64{"value": 12},
		},
		{
			Name:  "ranged",
			Point: charts.RangedPoint(14, 9),
			Want:  map[string]float64{"upper": 14, "lower": 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var (
				buf bytes.Buffer
				lg  = zerolog.New(&buf)
				r   = charts.Readout{
					Title:    "temp",
					Index:    1,
					Point:    tt.Point,
					Location: charts.NewPoint(10, 20),
					Marker:   charts.NewPoint(10, 25.5),
				}
			)
			logReadout(lg, r)

			var got map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			require.Equal(t, "temp", got["serie"])
			require.Equal(t, "10.00,25.50", got["marker"])
			for k, v := range tt.Want {
				require.Equal(t, v, got[k], k)
			}
			if tt.Point.Kind == charts.Ranged {
				require.NotContains(t, got, "value")
			}
		})
	}
}
