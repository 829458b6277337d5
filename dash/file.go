package dash

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/chartgeom"
	"github.com/midbel/slices"
)

var ErrEmpty = errors.New("no values selected")

type Limit struct {
	Offset int
	Count  int
}

func (i Limit) accept(n int) bool {
	if n < i.Offset {
		return false
	}
	return i.Count <= 0 || n < i.Offset+i.Count
}

// File is a CSV file, local or remote, holding one serie. The selector gives
// one value per row for a standard point or two values for a ranged point.
// When Labeled is set, the column X gives the label of the points.
type File struct {
	Path    string
	Ident   string
	Header  bool
	Labeled bool
	X       int
	Y       Selector
	Limit
}

func (f File) labels() labelFunc {
	if !f.Labeled {
		return nil
	}
	return labelAt(f.X)
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f File) Serie(ctx context.Context) (charts.Serie, error) {
	r, err := readFrom(ctx, f.Path)
	if err != nil {
		return charts.Serie{}, err
	}
	defer r.Close()

	points, err := loadPoints(r, f.Header, f.Limit, f.Y, f.labels())
	if err != nil {
		return charts.Serie{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	ser := charts.Serie{
		Title:  f.Name(),
		Points: points,
	}
	return ser, nil
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

type labelFunc func([]string) (string, error)

func labelAt(x int) labelFunc {
	return func(row []string) (string, error) {
		if x < 0 || x >= len(row) {
			return "", ErrIndex
		}
		return strings.TrimSpace(row[x]), nil
	}
}

func loadPoints(r io.Reader, header bool, limit Limit, sel Selector, label labelFunc) ([]charts.DataPoint, error) {
	if sel == nil {
		sel = SelectSingle(0)
	}
	var (
		rs   = csv.NewReader(r)
		list []charts.DataPoint
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if header {
		names, err := rs.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if err := checkColumns(names, sel); err != nil {
			return nil, err
		}
	}
	for n := 0; ; n++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if !limit.accept(n) {
			continue
		}
		values, err := sel.Select(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		pt, err := makePoint(values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		if label != nil {
			if pt.Label, err = label(row); err != nil {
				return nil, fmt.Errorf("row %d: %w", n+1, err)
			}
		}
		list = append(list, pt)
	}
	return list, nil
}

// checkColumns reports the first selected column missing from the header.
func checkColumns(names []string, sel Selector) error {
	if len(names) == 0 {
		return nil
	}
	for _, i := range sel.columns() {
		if i >= len(names) {
			return fmt.Errorf("column %d: %w", i, ErrIndex)
		}
	}
	return nil
}

func makePoint(values []float64) (charts.DataPoint, error) {
	var pt charts.DataPoint
	switch len(values) {
	case 0:
		return pt, ErrEmpty
	case 1:
		pt = charts.StandardPoint(slices.Fst(values))
	default:
		pt = charts.RangedPoint(slices.Fst(values), slices.Lst(values))
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return charts.IgnoredPoint(), nil
		}
	}
	return pt, nil
}
