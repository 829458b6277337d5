package dash

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrIndex = errors.New("invalid index")

type Indexer interface {
	columns() []int
}

// Selector extracts values from a CSV row. A missing value is reported as
// NaN and makes the point ignored.
type Selector interface {
	Select([]string) ([]float64, error)
	Indexer
}

type combined struct {
	selectors []Selector
}

func Combined(xs ...Selector) Selector {
	return combined{
		selectors: xs,
	}
}

func (c combined) columns() []int {
	var list []int
	for _, s := range c.selectors {
		list = append(list, s.columns()...)
	}
	return list
}

func (c combined) Select(row []string) ([]float64, error) {
	var list []float64
	for _, s := range c.selectors {
		fs, err := s.Select(row)
		if err != nil {
			return nil, err
		}
		list = append(list, fs...)
	}
	return list, nil
}

type summer struct {
	index []int
}

func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) columns() []int {
	return s.index
}

func (s summer) Select(row []string) ([]float64, error) {
	var sum float64
	for _, i := range s.index {
		if i < 0 || i >= len(row) {
			return nil, ErrIndex
		}
		f, err := parseValue(row[i])
		if err != nil {
			return nil, err
		}
		sum += f
	}
	return []float64{sum}, nil
}

type multi struct {
	index []int
}

func SelectSingle(i int) Selector {
	return SelectMulti([]int{i})
}

func SelectMulti(list []int) Selector {
	return multi{
		index: list,
	}
}

func (m multi) columns() []int {
	return m.index
}

func (m multi) Select(row []string) ([]float64, error) {
	list := make([]float64, 0, len(m.index))
	for _, i := range m.index {
		if i < 0 || i >= len(row) {
			return nil, ErrIndex
		}
		f, err := parseValue(row[i])
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

// ParseColumns parses a list of columns like "1", "1,2" or "1-3". A "+"
// separated group is summed into a single value, so "0+1,3" gives two values.
func ParseColumns(str string) (Selector, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return SelectSingle(0), nil
	}
	var (
		list  []Selector
		index []int
	)
	for _, part := range strings.Split(str, ",") {
		if strings.Contains(part, "+") {
			xs, err := parseIndices(strings.Split(part, "+"))
			if err != nil {
				return nil, err
			}
			if len(index) > 0 {
				list = append(list, SelectMulti(index))
				index = nil
			}
			list = append(list, SelectSum(xs))
			continue
		}
		fst, lst, ok := strings.Cut(part, "-")
		if !ok {
			xs, err := parseIndices([]string{part})
			if err != nil {
				return nil, err
			}
			index = append(index, xs...)
			continue
		}
		xs, err := parseIndices([]string{fst, lst})
		if err != nil {
			return nil, err
		}
		index = append(index, ExpandRange(xs[0], xs[1])...)
	}
	if len(index) > 0 {
		list = append(list, SelectMulti(index))
	}
	if len(list) == 1 {
		return list[0], nil
	}
	return Combined(list...), nil
}

func parseIndices(strs []string) ([]int, error) {
	list := make([]int, 0, len(strs))
	for _, s := range strs {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || i < 0 {
			return nil, ErrIndex
		}
		list = append(list, i)
	}
	return list, nil
}

func parseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" || str == "-" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}
