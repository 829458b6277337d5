package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/dash"
	"github.com/midbel/slices"
	"github.com/rs/zerolog"
)

var xlg = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	var (
		touch  = flag.String("touch", "", "x,y position to resolve")
		size   = flag.Float64("size", 0, "size of the pie")
		result = flag.String("o", "", "output file")
		quiet  = flag.Bool("q", false, "do not print the wedges")
	)
	flag.Parse()

	p, err := dash.LoadPieFile(flag.Arg(0))
	if err != nil {
		xlg.Error().Err(err).Msg("fail to load pie")
		os.Exit(1)
	}
	if *size > 0 {
		p.Width, p.Height = *size, *size
	}
	var (
		ch       = p.Chart()
		wedges   = ch.Wedges()
		selected []int
	)
	if !*quiet {
		printWedges(os.Stdout, ch.Nodes, wedges)
	}
	if *touch != "" {
		pt, err := parsePoint(*touch)
		if err != nil {
			xlg.Error().Err(err).Str("touch", *touch).Msg("invalid touch position")
			os.Exit(1)
		}
		var ok bool
		selected, ok = charts.ResolveLayered(pt, ch.Rect(), wedges)
		if !ok {
			xlg.Warn().Str("touch", *touch).Msg("nothing under touch")
		} else {
			labels, _ := ch.Touch(pt)
			xlg.Info().
				Strs("path", labels).
				Float64("degrees", charts.TouchDegrees(pt, ch.Rect())).
				Msg("touch")
		}
	}
	if *result == "" {
		return
	}
	if err := render(*result, ch, selected); err != nil {
		xlg.Error().Err(err).Msg("fail to render pie")
		os.Exit(2)
	}
}

func printWedges(w io.Writer, nodes []charts.PieNode, wedges []charts.PieWedge) {
	for i, wg := range wedges {
		indent := strings.Repeat("  ", wg.Depth)
		fmt.Fprintf(w, "%s%s\t%.2f\t%.2f\t%.2f\n", indent, nodes[i].Label, nodes[i].Value, wg.Start, wg.Sweep)
		printWedges(w, nodes[i].Children, wg.Children)
	}
}

func parsePoint(str string) (charts.Point, error) {
	vs := strings.Split(str, ",")
	if len(vs) != 2 {
		return charts.Point{}, fmt.Errorf("%s: invalid number of values given for point", str)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(slices.Fst(vs)), 64)
	if err != nil {
		return charts.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(slices.Lst(vs)), 64)
	if err != nil {
		return charts.Point{}, err
	}
	return charts.NewPoint(x, y), nil
}

func render(file string, ch charts.PieChart, selected []int) error {
	var w io.Writer = os.Stdout
	if file != "-" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	style := charts.DefaultStyle()
	style.Fill.List = charts.Category10
	style.Fill.Opacity = 0.8
	ch.Render(w, style, selected)
	return nil
}
