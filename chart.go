package charts

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Config is the part of a chart description consumed by the geometry: how the
// values are mapped to the viewport and how the lines are traced.
type Config struct {
	Baseline   Baseline
	Topline    Topline
	Line       LineType
	Fill       bool
	Band       bool
	Bucket     bool
	IgnoreZero bool
}

func DefaultConfig() Config {
	return Config{
		Baseline: MinimumValue,
		Topline:  MaximumValue,
		Line:     Straight,
	}
}

func (c Config) Kind() Kind {
	return KindFor(c.Line, c.Fill, c.Band, c.Bucket)
}

// Chart binds a set of series to a configuration. The series given to a
// chart are never modified.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding
	Config

	Series []Serie

	caches []PathCache
}

func NewChart(cfg Config, series ...Serie) *Chart {
	return &Chart{
		Config: cfg,
		Series: series,
	}
}

func (c *Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c *Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Viewport is the area available for the series once the padding removed.
func (c *Chart) Viewport() Viewport {
	return NewViewport(c.DrawingWidth(), c.DrawingHeight())
}

func (c *Chart) Range() ValueRange {
	return ResolveAll(c.series(), c.Baseline, c.Topline)
}

// Paths returns one path per serie. Paths are memoized per serie until the
// points, the range or the viewport change.
func (c *Chart) Paths(vp Viewport) []Path {
	var (
		list   = c.series()
		vr     = ResolveAll(list, c.Baseline, c.Topline)
		kind   = c.Kind()
		result = make([]Path, len(list))
	)
	if len(c.caches) != len(list) {
		c.caches = make([]PathCache, len(list))
	}
	for i, s := range list {
		result[i] = c.caches[i].Build(s.Points, kind, vp, vr.Min, vr.Range)
	}
	return result
}

// BarWidth is the fraction of a bucket covered by a bar.
const BarWidth = 0.8

// Bars returns the bars of each serie when the points are spread over buckets,
// nil otherwise. Ignored points have no bar.
func (c *Chart) Bars(vp Viewport) [][]Rect {
	if !c.Kind().Bucket() {
		return nil
	}
	var (
		list   = c.series()
		vr     = ResolveAll(list, c.Baseline, c.Topline)
		result = make([][]Rect, len(list))
	)
	for i, s := range list {
		for j, pt := range s.Points {
			if pt.Ignore {
				continue
			}
			r := BarRect(pt.Top(), j, s.Len(), vp, vr.Min, vr.Range, BarWidth)
			result[i] = append(result[i], r)
		}
	}
	return result
}

// Touch resolves x against every serie of the chart.
func (c *Chart) Touch(x float64, vp Viewport) []Readout {
	list := c.series()
	return ResolveSeries(x, list, c.Kind(), vp, ResolveAll(list, c.Baseline, c.Topline))
}

// Ticks returns the values of the ticks of the value axis and their position
// in the viewport.
func (c *Chart) Ticks(vp Viewport, max int) []Tick {
	return Ticks(c.Range(), vp.Height, max)
}

func (c *Chart) series() []Serie {
	if !c.IgnoreZero {
		return c.Series
	}
	list := make([]Serie, len(c.Series))
	for i := range c.Series {
		list[i] = c.Series[i].WithoutZero()
	}
	return list
}

type PieChart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Nodes []PieNode
}

func (c PieChart) Rect() Rect {
	return Rect{
		Min: NewPoint(0, 0),
		Max: NewPoint(c.Width-c.Padding.Horizontal(), c.Height-c.Padding.Vertical()),
	}
}

func (c PieChart) Wedges() []PieWedge {
	return Allocate(c.Nodes)
}

// Touch returns the labels of the nodes under touch, from the root level to
// the ring touched.
func (c PieChart) Touch(touch Point) ([]string, bool) {
	index, ok := ResolveLayered(touch, c.Rect(), c.Wedges())
	if !ok {
		return nil, false
	}
	var (
		list  []string
		nodes = c.Nodes
	)
	for _, i := range index {
		list = append(list, nodes[i].Label)
		nodes = nodes[i].Children
	}
	return list, true
}
