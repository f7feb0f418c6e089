package memreport

import "regexp"

var (
	groupNamePattern   = regexp.MustCompile(`Total (.*) size:`)
	groupInMemPattern  = regexp.MustCompile(`InMem=\s*([\d.]+)\s*MB`)
	groupOnDiskPattern = regexp.MustCompile(`OnDisk=\s*([\d.]+)\s*MB`)
)

const defaultGroupName = "Total Size"

// TextureGroupTotal is a "Total <group> size:" line from ListTextures. Sizes are MB
// as reported.
type TextureGroupTotal struct {
	Name     string  `yaml:"name" json:"name"`
	InMemMB  float64 `yaml:"in_mem_mb" json:"in_mem_mb"`
	OnDiskMB float64 `yaml:"on_disk_mb" json:"on_disk_mb"`
}

// ParseGroupTotal parses a texture group total line. The overall "Total size:" line
// has no group name and is reported as "Total Size".
func ParseGroupTotal(line string) TextureGroupTotal {
	name := defaultGroupName
	if m := groupNamePattern.FindStringSubmatch(line); m != nil {
		name = m[1]
	}
	return TextureGroupTotal{
		Name:     name,
		InMemMB:  atof(submatch(groupInMemPattern, line)),
		OnDiskMB: atof(submatch(groupOnDiskPattern, line)),
	}
}
