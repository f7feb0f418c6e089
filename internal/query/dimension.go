package query

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Dimension is a width x height pair such as a texture size.
type Dimension struct {
	Width  int
	Height int
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ParseDimension reads "WxH". Missing or non-numeric parts are zero.
func ParseDimension(s string) Dimension {
	w, h, _ := strings.Cut(strings.TrimSpace(s), "x")
	return Dimension{Width: atoiOrZero(w), Height: atoiOrZero(h)}
}

// CompareDimensions orders "WxH" strings by width, then height.
func CompareDimensions(a, b string) int {
	da, db := ParseDimension(a), ParseDimension(b)
	if c := cmp.Compare(da.Width, db.Width); c != 0 {
		return c
	}
	return cmp.Compare(da.Height, db.Height)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
