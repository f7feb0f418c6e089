package tables

import (
	"fmt"

	"github.com/five82/memscope/internal/memreport"
)

// TextureSummaryRow is the footer row of the texture table. count is the number of
// distinct texture records before any filter.
func TextureSummaryRow(count int) []string {
	row := make([]string, len(Textures.Fields()))
	row[0] = fmt.Sprintf("Count: %d textures", count)
	return row
}

// StaticMeshSummaryRow is the footer row of the static mesh table, one cell per
// column, carried from the object list summary line.
func StaticMeshSummaryRow(s memreport.StaticMeshSummary) []string {
	return []string{
		fmt.Sprintf("Count: %d", s.ObjectCount),
		"Total: " + FormatNumber(s.TotalM) + "M",
		"Max: " + FormatNumber(s.MaxM) + "M",
		"Res: " + FormatNumber(s.ResM) + "M",
		"ResDedSys: " + FormatNumber(s.ResDedSysM) + "M",
		"ResDedVid: " + FormatNumber(s.ResDedVidM) + "M",
		"ResUnknown: " + FormatNumber(s.ResUnknownM) + "M",
	}
}

// PlatformOverview returns the headline platform statistics.
func PlatformOverview(p memreport.PlatformSummary) []memreport.PlatformEntry {
	return []memreport.PlatformEntry{
		{Name: "Platform", Value: p.Platform},
		{Name: "Physical Memory", Value: p.PhysicalMemory},
		{Name: "Virtual Memory", Value: p.VirtualMemory},
	}
}
