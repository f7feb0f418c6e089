package memreport

import (
	"regexp"
	"strings"
)

// staticMeshFields is the whitespace token count of an object list data row:
// class, object path and six KB columns.
const staticMeshFields = 8

var staticMeshSummaryPattern = regexp.MustCompile(
	`(\d+)\s+Objects\s+\(Total:\s+([\d.]+[MK])\s+/\s+Max:\s+([\d.]+[MK])\s+/\s+Res:\s+([\d.]+[MK])\s+\|\s+ResDedSys:\s+([\d.]+[MK])\s+/\s+ResDedVid:\s+([\d.]+[MK])\s+/\s+ResUnknown:\s+([\d.]+[MK])\)`)

// StaticMeshRecord is one row of "obj list class=StaticMesh". Sizes are KB.
type StaticMeshRecord struct {
	Line                          string  `yaml:"-" json:"-"`
	Path                          string  `yaml:"path" json:"path"`
	Name                          string  `yaml:"name" json:"name"`
	NumKB                         float64 `yaml:"num_kb" json:"num_kb"`
	MaxKB                         float64 `yaml:"max_kb" json:"max_kb"`
	ResExclusiveKB                float64 `yaml:"res_exclusive_kb" json:"res_exclusive_kb"`
	ResExclusiveDedicatedSystemKB float64 `yaml:"res_exclusive_dedicated_system_kb" json:"res_exclusive_dedicated_system_kb"`
	ResExclusiveDedicatedVideoKB  float64 `yaml:"res_exclusive_dedicated_video_kb" json:"res_exclusive_dedicated_video_kb"`
	ResExclusiveUnknownKB         float64 `yaml:"res_exclusive_unknown_kb" json:"res_exclusive_unknown_kb"`
}

// StaticMeshSummary is the trailing "N Objects (Total: ...)" line of the object list.
// Values keep the magnitude printed by the engine with the unit letter removed.
type StaticMeshSummary struct {
	ObjectCount int     `yaml:"object_count" json:"object_count"`
	TotalM      float64 `yaml:"total_m" json:"total_m"`
	MaxM        float64 `yaml:"max_m" json:"max_m"`
	ResM        float64 `yaml:"res_m" json:"res_m"`
	ResDedSysM  float64 `yaml:"res_ded_sys_m" json:"res_ded_sys_m"`
	ResDedVidM  float64 `yaml:"res_ded_vid_m" json:"res_ded_vid_m"`
	ResUnknownM float64 `yaml:"res_unknown_m" json:"res_unknown_m"`
}

// ParseStaticMesh parses an object list row. ok is false for rows that do not have
// exactly eight whitespace-separated fields (headers, summaries, stray text).
func ParseStaticMesh(line string) (rec StaticMeshRecord, ok bool) {
	tokens := strings.Fields(line)
	if len(tokens) != staticMeshFields {
		return StaticMeshRecord{}, false
	}
	rec = StaticMeshRecord{Line: line}
	rec.Path, rec.Name = objectName(tokens[1])
	rec.NumKB = atof(tokens[2])
	rec.MaxKB = atof(tokens[3])
	rec.ResExclusiveKB = atof(tokens[4])
	rec.ResExclusiveDedicatedSystemKB = atof(tokens[5])
	rec.ResExclusiveDedicatedVideoKB = atof(tokens[6])
	rec.ResExclusiveUnknownKB = atof(tokens[7])
	return rec, true
}

// ParseStaticMeshSummary parses the object list summary line. Lines that do not
// match yield the zero summary.
func ParseStaticMeshSummary(line string) StaticMeshSummary {
	m := staticMeshSummaryPattern.FindStringSubmatch(line)
	if m == nil {
		return StaticMeshSummary{}
	}
	return StaticMeshSummary{
		ObjectCount: atoi(m[1]),
		TotalM:      magnitude(m[2]),
		MaxM:        magnitude(m[3]),
		ResM:        magnitude(m[4]),
		ResDedSysM:  magnitude(m[5]),
		ResDedVidM:  magnitude(m[6]),
		ResUnknownM: magnitude(m[7]),
	}
}

// magnitude drops the trailing unit letter of values such as "12.5M".
func magnitude(s string) float64 {
	if s == "" {
		return 0
	}
	return atof(s[:len(s)-1])
}
