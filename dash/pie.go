package dash

import (
	"fmt"
	"io"
	"os"

	"github.com/midbel/chartgeom"
	"gopkg.in/yaml.v3"
)

// Node is a node of a pie tree as written in YAML. The value of a node with
// children may be omitted: it is then the sum of its children.
type Node struct {
	Label    string  `yaml:"label"`
	Value    float64 `yaml:"value"`
	Children []Node  `yaml:"children"`
}

func (n Node) node() charts.PieNode {
	pn := charts.PieNode{
		Label: n.Label,
		Value: n.Value,
	}
	var sum float64
	for _, c := range n.Children {
		child := c.node()
		sum += child.Value
		pn.Children = append(pn.Children, child)
	}
	if pn.Value == 0 {
		pn.Value = sum
	}
	return pn
}

type Pie struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Nodes  []Node  `yaml:"nodes"`
}

func (p Pie) Chart() charts.PieChart {
	c := charts.PieChart{
		Title:  p.Title,
		Width:  p.Width,
		Height: p.Height,
	}
	for _, n := range p.Nodes {
		c.Nodes = append(c.Nodes, n.node())
	}
	return c
}

func LoadPie(r io.Reader) (Pie, error) {
	p := Pie{
		Width:  DefaultHeight,
		Height: DefaultHeight,
	}
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return p, err
	}
	for _, n := range p.Nodes {
		if err := checkNode(n); err != nil {
			return p, err
		}
	}
	return p, nil
}

func LoadPieFile(file string) (Pie, error) {
	r, err := os.Open(file)
	if err != nil {
		return Pie{}, err
	}
	defer r.Close()

	p, err := LoadPie(r)
	if err != nil {
		return p, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}

func checkNode(n Node) error {
	if n.Value < 0 {
		return fmt.Errorf("%s: negative value (%g)", n.Label, n.Value)
	}
	for _, c := range n.Children {
		if err := checkNode(c); err != nil {
			return err
		}
	}
	return nil
}
