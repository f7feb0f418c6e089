package memreport

import "strings"

const (
	platformPrefix        = "Platform Memory Stats for"
	physicalMemoryName    = "Physical Memory"
	virtualMemoryName     = "Virtual Memory"
	platformEntryName     = "Platform"
	processPhysicalPrefix = "Process Physical Memory:"
	processVirtualPrefix  = "Process Virtual Memory:"
)

var memoryPrefixes = []string{
	physicalMemoryName + ":",
	virtualMemoryName + ":",
	processPhysicalPrefix,
	processVirtualPrefix,
}

// PlatformEntry is one line of the "Mem FromReport" section. Lines the parser does
// not recognise have an empty Name and the raw line as Value.
type PlatformEntry struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Value string `yaml:"value" json:"value"`
}

// PlatformSummary holds the platform memory statistics of a report.
type PlatformSummary struct {
	Platform       string          `yaml:"platform" json:"platform"`
	PhysicalMemory string          `yaml:"physical_memory" json:"physical_memory"`
	VirtualMemory  string          `yaml:"virtual_memory" json:"virtual_memory"`
	Entries        []PlatformEntry `yaml:"entries" json:"entries"`
}

// ParsePlatform classifies the captured platform lines. When the section repeats,
// the last Physical Memory and Virtual Memory values win.
func ParsePlatform(lines []string) PlatformSummary {
	var summary PlatformSummary
	for _, line := range lines {
		entry := ParsePlatformLine(line)
		switch entry.Name {
		case platformEntryName:
			summary.Platform = entry.Value
		case physicalMemoryName:
			summary.PhysicalMemory = entry.Value
		case virtualMemoryName:
			summary.VirtualMemory = entry.Value
		}
		summary.Entries = append(summary.Entries, entry)
	}
	return summary
}

// ParsePlatformLine classifies a single platform line.
func ParsePlatformLine(line string) PlatformEntry {
	if strings.HasPrefix(line, platformPrefix) {
		value := strings.TrimPrefix(line, platformPrefix)
		if _, after, found := strings.Cut(line, ":"); found {
			value = after
		}
		return PlatformEntry{Name: platformEntryName, Value: strings.TrimSpace(value)}
	}
	for _, prefix := range memoryPrefixes {
		if strings.HasPrefix(line, prefix) {
			name, value, _ := strings.Cut(line, ":")
			return PlatformEntry{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
		}
	}
	return PlatformEntry{Value: line}
}
