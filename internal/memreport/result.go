package memreport

import "github.com/five82/memscope/internal/query"

// Result is everything parsed from one memreport. It is a pure function of the
// report lines and the section specs and is never mutated after Parse returns.
type Result struct {
	LineCount         int                 `yaml:"line_count" json:"line_count"`
	Platform          PlatformSummary     `yaml:"platform" json:"platform"`
	TextureGroups     []TextureGroupTotal `yaml:"texture_groups" json:"texture_groups"`
	Textures          []TextureRecord     `yaml:"textures" json:"textures"`
	StaticMeshes      []StaticMeshRecord  `yaml:"static_meshes" json:"static_meshes"`
	StaticMeshSummary StaticMeshSummary   `yaml:"static_mesh_summary" json:"static_mesh_summary"`
}

// Parse extracts and parses every known section from lines.
func Parse(lines []string, sections Sections) Result {
	res := Result{LineCount: len(lines)}

	totals, textures := SplitTextureLines(Extract(lines, sections.Textures))
	for _, line := range totals {
		res.TextureGroups = append(res.TextureGroups, ParseGroupTotal(line))
	}
	for _, line := range query.DedupStrings(textures) {
		res.Textures = append(res.Textures, ParseTexture(line))
	}

	res.Platform = ParsePlatform(Extract(lines, sections.Platform))

	meshLines := Extract(lines, sections.StaticMeshes)
	for _, line := range meshLines {
		if rec, ok := ParseStaticMesh(line); ok {
			res.StaticMeshes = append(res.StaticMeshes, rec)
		}
	}
	if n := len(meshLines); n > 0 {
		res.StaticMeshSummary = ParseStaticMeshSummary(meshLines[n-1])
	}
	return res
}

// Empty reports whether no section produced any data.
func (r Result) Empty() bool {
	return len(r.Textures) == 0 &&
		len(r.TextureGroups) == 0 &&
		len(r.StaticMeshes) == 0 &&
		len(r.Platform.Entries) == 0
}
