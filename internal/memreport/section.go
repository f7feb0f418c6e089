package memreport

import "strings"

// SectionSpec describes how to find one section inside a memreport.
type SectionSpec struct {
	Name            string `yaml:"name" json:"name"`
	Begin           string `yaml:"begin" json:"begin"`
	End             string `yaml:"end" json:"end"`
	HeaderSkip      int    `yaml:"header_skip" json:"header_skip"`
	CaseInsensitive bool   `yaml:"case_insensitive" json:"case_insensitive"`
}

// Sections lists the section specs Parse understands.
type Sections struct {
	Textures     SectionSpec
	Platform     SectionSpec
	StaticMeshes SectionSpec
}

const (
	SectionTextures     = "textures"
	SectionPlatform     = "platform"
	SectionStaticMeshes = "static_meshes"
)

// DefaultSections returns the markers emitted by the engine's MemReport command.
func DefaultSections() Sections {
	return Sections{
		Textures: SectionSpec{
			Name:            SectionTextures,
			Begin:           `MemReport: Begin command "ListTextures`,
			End:             `MemReport: End command "ListTextures`,
			HeaderSkip:      2,
			CaseInsensitive: true,
		},
		Platform: SectionSpec{
			Name:            SectionPlatform,
			Begin:           `MemReport: Begin command "Mem FromReport"`,
			End:             `MemReport: End command "Mem FromReport"`,
			HeaderSkip:      0,
			CaseInsensitive: true,
		},
		StaticMeshes: SectionSpec{
			Name:            SectionStaticMeshes,
			Begin:           `MemReport: Begin command "obj list class=StaticMesh -resourcesizesort"`,
			End:             `MemReport: End command "obj list class=StaticMesh -resourcesizesort"`,
			HeaderSkip:      2,
			CaseInsensitive: true,
		},
	}
}

// Extract returns the lines inside every begin/end span of spec, in file order.
// Marker lines, blank lines and the first HeaderSkip non-blank lines of each span
// are dropped. Spans are not reentrant: a second begin marker inside a span only
// restarts the header skip.
func Extract(lines []string, spec SectionSpec) []string {
	begin, end := spec.Begin, spec.End
	if spec.CaseInsensitive {
		begin, end = strings.ToLower(begin), strings.ToLower(end)
	}

	var out []string
	capturing := false
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		probe := line
		if spec.CaseInsensitive {
			probe = strings.ToLower(line)
		}
		switch {
		case begin != "" && strings.HasPrefix(probe, begin):
			capturing = true
			skipped = 0
			continue
		case end != "" && strings.HasPrefix(probe, end):
			capturing = false
			continue
		}
		if !capturing {
			continue
		}
		if skipped < spec.HeaderSkip {
			skipped++
			continue
		}
		out = append(out, line)
	}
	return out
}
