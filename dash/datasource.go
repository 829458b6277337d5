package dash

import (
	"context"
	"fmt"
	"strings"

	"github.com/midbel/chartgeom"
	"golang.org/x/sync/errgroup"
)

type DataSource interface {
	Name() string
	Serie(context.Context) (charts.Serie, error)
}

// LocalData holds the CSV content of a serie inline in the dashboard file.
type LocalData struct {
	Ident   string
	Content string
	Labeled bool
	X       int
	Y       Selector
}

func (d LocalData) Name() string {
	return d.Ident
}

func (d LocalData) Serie(_ context.Context) (charts.Serie, error) {
	var label labelFunc
	if d.Labeled {
		label = labelAt(d.X)
	}
	points, err := loadPoints(strings.NewReader(d.Content), false, Limit{}, d.Y, label)
	if err != nil {
		return charts.Serie{}, fmt.Errorf("%s: %w", d.Ident, err)
	}
	ser := charts.Serie{
		Title:  d.Ident,
		Points: points,
	}
	return ser, nil
}

// LoadAll loads every source concurrently. The series are returned in the
// order of the sources. The first error cancels the remaining loads.
func LoadAll(ctx context.Context, sources []DataSource) ([]charts.Serie, error) {
	var (
		list   = make([]charts.Serie, len(sources))
		grp, c = errgroup.WithContext(ctx)
	)
	for i := range sources {
		i := i
		grp.Go(func() error {
			ser, err := sources[i].Serie(c)
			if err != nil {
				return err
			}
			list[i] = ser
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return list, nil
}
