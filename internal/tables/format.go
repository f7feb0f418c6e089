package tables

import (
	"fmt"
	"strconv"
)

// FormatKB renders a KB value as megabytes with two decimals. Reports use 1000 KB
// per MB.
func FormatKB(kb float64) string {
	return fmt.Sprintf("%.2f MB", kb/1000)
}

// FormatMB renders a value that is already in MB.
func FormatMB(mb float64) string {
	return FormatNumber(mb) + " MB"
}

func FormatBool(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatDimension(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}
