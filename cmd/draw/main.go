package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/dash"
	"github.com/rs/zerolog"
)

var xlg = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	var (
		config = flag.String("c", "", "dashboard file")
		touch  = flag.Float64("touch", -1, "x position in the plot area to resolve")
		result = flag.String("o", "", "output file")
		paths  = flag.Bool("p", false, "print path data instead of drawing")
		marker = flag.String("marker", "circle", "marker of the touched points (circle, square, cross)")
		debug  = flag.Bool("debug", false, "debug logs")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	mark, err := charts.GetPointFunc(*marker)
	if err != nil {
		xlg.Error().Err(err).Msg("invalid marker")
		os.Exit(1)
	}
	d, err := loadDashboard(*config, flag.Args())
	if err != nil {
		xlg.Error().Err(err).Msg("fail to load dashboard")
		os.Exit(1)
	}
	style := d.Style()
	style.Marker = mark
	sources, err := d.Sources()
	if err != nil {
		xlg.Error().Err(err).Msg("invalid series")
		os.Exit(1)
	}
	series, err := dash.LoadAll(context.Background(), sources)
	if err != nil {
		xlg.Error().Err(err).Msg("fail to load series")
		os.Exit(2)
	}
	ch, err := d.Chart(series)
	if err != nil {
		xlg.Error().Err(err).Msg("invalid chart configuration")
		os.Exit(1)
	}
	var (
		vp = ch.Viewport()
		vr = ch.Range()
	)
	xlg.Debug().
		Str("kind", ch.Kind().String()).
		Int("series", len(series)).
		Float64("min", vr.Min).
		Float64("max", vr.Max).
		Msg("chart ready")

	var readouts []charts.Readout
	if *touch >= 0 {
		readouts = ch.Touch(*touch, vp)
		for _, r := range readouts {
			logReadout(xlg, r)
		}
		if len(readouts) == 0 {
			xlg.Warn().Float64("x", *touch).Msg("nothing under touch")
		}
	}
	if *paths {
		for i, p := range ch.Paths(vp) {
			fmt.Fprintf(os.Stdout, "%s\t%s\n", series[i].Title, p)
		}
		return
	}
	if err := render(*result, d.Path, ch, style, readouts); err != nil {
		xlg.Error().Err(err).Msg("fail to render chart")
		os.Exit(2)
	}
}

// loadDashboard reads the dashboard file if given. Files given on the command
// line are added as series.
func loadDashboard(file string, files []string) (dash.Dashboard, error) {
	d := dash.Default()
	if file != "" {
		x, err := dash.LoadFile(file)
		if err != nil {
			return d, err
		}
		d = x
	}
	for _, f := range files {
		d.Series = append(d.Series, dash.Input{
			File:   f,
			Header: true,
		})
	}
	if len(d.Series) == 0 {
		return d, fmt.Errorf("no series given")
	}
	return d, nil
}

func render(file, fallback string, ch *charts.Chart, style charts.Style, readouts []charts.Readout) error {
	if file == "" {
		file = fallback
	}
	var w io.Writer = os.Stdout
	if file != "" && file != "-" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	ch.Render(w, style, readouts)
	return nil
}

func logReadout(lg zerolog.Logger, r charts.Readout) {
	ev := lg.Info().
		Str("serie", r.Title).
		Int("index", r.Index)
	if r.Point.Kind == charts.Ranged {
		ev = ev.Float64("upper", r.Point.Upper).Float64("lower", r.Point.Lower)
	} else {
		ev = ev.Float64("value", r.Point.Value)
	}
	ev.Str("location", formatPoint(r.Location)).
		Str("marker", formatPoint(r.Marker)).
		Msg("touch")
}

func formatPoint(pt charts.Point) string {
	x := strconv.FormatFloat(pt.X, 'f', 2, 64)
	y := strconv.FormatFloat(pt.Y, 'f', 2, 64)
	return x + "," + y
}
