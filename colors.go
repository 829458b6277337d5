package charts

import (
	"strings"
)

// Palette gives the colors of the series, cycling when there are more series
// than colors.
type Palette []string

func NewPalette(colors ...string) Palette {
	var list Palette
	for _, c := range colors {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if isHex(c) {
			c = "#" + c
		}
		list = append(list, c)
	}
	return list
}

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return "black"
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func isHex(str string) bool {
	if len(str) != 3 && len(str) != 6 {
		return false
	}
	for _, r := range strings.ToLower(str) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
