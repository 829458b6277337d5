package dash

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/midbel/chartgeom"
	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultPath   = "out.svg"
)

type Input struct {
	File    string `yaml:"file"`
	Title   string `yaml:"title"`
	Columns string `yaml:"columns"`
	Label   *int   `yaml:"label"`
	Header  bool   `yaml:"header"`
	Content string `yaml:"content"`
	Offset  int    `yaml:"offset"`
	Count   int    `yaml:"count"`
}

// Source returns the data source of the input: inline content when set, the
// file otherwise.
func (i Input) Source() (DataSource, error) {
	sel, err := ParseColumns(i.Columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i.Columns, err)
	}
	if i.Content != "" {
		d := LocalData{
			Ident:   i.Title,
			Content: i.Content,
			Y:       sel,
		}
		if i.Label != nil {
			d.Labeled = true
			d.X = *i.Label
		}
		return d, nil
	}
	if i.File == "" {
		return nil, fmt.Errorf("%s: no file given", i.Title)
	}
	f := File{
		Path:   i.File,
		Ident:  i.Title,
		Header: i.Header,
		Y:      sel,
		Limit: Limit{
			Offset: i.Offset,
			Count:  i.Count,
		},
	}
	if i.Label != nil {
		f.Labeled = true
		f.X = *i.Label
	}
	return f, nil
}

type Dashboard struct {
	Title  string  `yaml:"title"`
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Padding struct {
		Top    float64 `yaml:"top"`
		Right  float64 `yaml:"right"`
		Bottom float64 `yaml:"bottom"`
		Left   float64 `yaml:"left"`
	} `yaml:"padding"`

	Baseline   string  `yaml:"baseline"`
	Floor      float64 `yaml:"floor"`
	Topline    string  `yaml:"topline"`
	Fixed      float64 `yaml:"fixed"`
	Line       string  `yaml:"line"`
	Fill       bool    `yaml:"fill"`
	Band       bool    `yaml:"band"`
	Bucket     bool    `yaml:"bucket"`
	IgnoreZero bool    `yaml:"ignore-zero"`

	Colors  []string `yaml:"colors"`
	Opacity float64  `yaml:"opacity"`

	Series []Input `yaml:"series"`
}

func Default() Dashboard {
	return Dashboard{
		Path:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

func Load(r io.Reader) (Dashboard, error) {
	d := Default()
	if err := yaml.NewDecoder(r).Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return d, err
	}
	return d, nil
}

func LoadFile(file string) (Dashboard, error) {
	r, err := os.Open(file)
	if err != nil {
		return Dashboard{}, err
	}
	defer r.Close()

	d, err := Load(r)
	if err != nil {
		return d, fmt.Errorf("%s: %w", file, err)
	}
	return d, nil
}

func (d Dashboard) Config() (charts.Config, error) {
	cfg := charts.DefaultConfig()
	base, err := parseBaseline(d.Baseline, d.Floor)
	if err != nil {
		return cfg, err
	}
	top, err := parseTopline(d.Topline, d.Fixed)
	if err != nil {
		return cfg, err
	}
	line, err := parseLine(d.Line)
	if err != nil {
		return cfg, err
	}
	cfg.Baseline = base
	cfg.Topline = top
	cfg.Line = line
	cfg.Fill = d.Fill
	cfg.Band = d.Band
	cfg.Bucket = d.Bucket
	cfg.IgnoreZero = d.IgnoreZero
	return cfg, nil
}

func (d Dashboard) Sources() ([]DataSource, error) {
	var list []DataSource
	for _, i := range d.Series {
		src, err := i.Source()
		if err != nil {
			return nil, err
		}
		list = append(list, src)
	}
	return list, nil
}

// Style returns the default style with the colors and the fill opacity of
// the dashboard when given.
func (d Dashboard) Style() charts.Style {
	style := charts.DefaultStyle()
	if list := charts.NewPalette(d.Colors...); len(list) > 0 {
		style.Fill.List = list
	}
	if d.Opacity > 0 && d.Opacity <= 1 {
		style.Fill.Opacity = d.Opacity
	}
	return style
}

// Chart creates the chart described by the dashboard with the given series.
func (d Dashboard) Chart(series []charts.Serie) (*charts.Chart, error) {
	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	c := charts.NewChart(cfg, series...)
	c.Title = d.Title
	c.Width = d.Width
	c.Height = d.Height
	c.Padding = charts.Padding{
		Top:    d.Padding.Top,
		Right:  d.Padding.Right,
		Bottom: d.Padding.Bottom,
		Left:   d.Padding.Left,
	}
	return c, nil
}
