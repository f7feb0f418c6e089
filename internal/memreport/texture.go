package memreport

import (
	"regexp"
	"strings"
)

// textureColumns is the comma-separated field count of a ListTextures record.
// Shorter lines starting with "Total" are group totals.
const textureColumns = 12

var (
	dimensionPattern   = regexp.MustCompile(`(\d+)x(\d+)`)
	cookedSizePattern  = regexp.MustCompile(`\((\d+) KB`)
	currentSizePattern = regexp.MustCompile(`\((\d+) KB\)`)
)

// TextureRecord is one ListTextures line:
//
//	Cooked: WxH (KB, bias), Current: WxH (KB), Format, LODGroup, Path, Streaming, UnknownRef, VT, Usage, NumMips, Uncompressed
type TextureRecord struct {
	Line            string `yaml:"-" json:"-"`
	Path            string `yaml:"path" json:"path"`
	Name            string `yaml:"name" json:"name"`
	CookedWidth     int    `yaml:"cooked_width" json:"cooked_width"`
	CookedHeight    int    `yaml:"cooked_height" json:"cooked_height"`
	CookedSizeKB    int    `yaml:"cooked_size_kb" json:"cooked_size_kb"`
	CurrentWidth    int    `yaml:"current_width" json:"current_width"`
	CurrentHeight   int    `yaml:"current_height" json:"current_height"`
	CurrentSizeKB   int    `yaml:"current_size_kb" json:"current_size_kb"`
	Format          string `yaml:"format" json:"format"`
	LODGroup        string `yaml:"lod_group" json:"lod_group"`
	Streaming       bool   `yaml:"streaming" json:"streaming"`
	VirtualTextured bool   `yaml:"virtual_textured" json:"virtual_textured"`
	UsageCount      int    `yaml:"usage_count" json:"usage_count"`
	NumMips         int    `yaml:"num_mips" json:"num_mips"`
	Uncompressed    bool   `yaml:"uncompressed" json:"uncompressed"`
}

// IsGroupTotalLine reports whether a captured ListTextures line is a group total
// rather than a texture record.
func IsGroupTotalLine(line string) bool {
	return strings.HasPrefix(line, "Total") && len(strings.Split(line, ",")) < textureColumns
}

// SplitTextureLines routes captured ListTextures lines into group totals and
// texture records, preserving order within each.
func SplitTextureLines(lines []string) (totals, textures []string) {
	for _, line := range lines {
		if IsGroupTotalLine(line) {
			totals = append(totals, line)
		} else {
			textures = append(textures, line)
		}
	}
	return totals, textures
}

// ParseTexture parses one texture record. Missing or malformed fields keep their
// zero values.
func ParseTexture(line string) TextureRecord {
	tokens := strings.Split(line, ",")
	rec := TextureRecord{Line: line}

	cooked := token(tokens, 0)
	rec.CookedWidth, rec.CookedHeight = matchDimensions(cooked)
	rec.CookedSizeKB = atoi(submatch(cookedSizePattern, cooked))

	current := token(tokens, 2)
	rec.CurrentWidth, rec.CurrentHeight = matchDimensions(current)
	rec.CurrentSizeKB = atoi(submatch(currentSizePattern, current))

	rec.Format = afterLastUnderscore(token(tokens, 3))
	rec.LODGroup = afterLastUnderscore(token(tokens, 4))
	rec.Path, rec.Name = objectName(token(tokens, 5))

	rec.Streaming = yes(token(tokens, 6))
	rec.VirtualTextured = yes(token(tokens, 8))
	rec.UsageCount = atoi(token(tokens, 9))
	rec.NumMips = atoi(token(tokens, 10))
	rec.Uncompressed = yes(token(tokens, 11))
	return rec
}

func matchDimensions(s string) (int, int) {
	m := dimensionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}
	return atoi(m[1]), atoi(m[2])
}

func afterLastUnderscore(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		return s[i+1:]
	}
	return s
}
