package memreport

import (
	"regexp"
	"strconv"
	"strings"
)

// token returns tokens[i], or "" when the line is too short.
func token(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func yes(s string) bool {
	return strings.TrimSpace(s) == "YES"
}

// objectName splits an object path such as
// "/Engine/EngineMaterials/DefaultBloomKernel.DefaultBloomKernel" into the package
// path before the first dot and the asset name (its last path segment).
func objectName(raw string) (path, name string) {
	path, _, _ = strings.Cut(strings.TrimSpace(raw), ".")
	name = path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return path, name
}
