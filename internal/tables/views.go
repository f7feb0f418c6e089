package tables

import (
	"github.com/five82/memscope/internal/memreport"
	"github.com/five82/memscope/internal/query"
)

// Textures lists ListTextures records, largest in-memory size first.
var Textures = newView("Textures",
	query.SortSpec{{Column: "currentSize", Direction: query.Desc}},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "name", Title: "Name", Kind: query.KindString,
			Text:   func(r memreport.TextureRecord) string { return r.Name },
			Search: texturePath},
		Width: 40, Filter: FilterText,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "currentDim", Title: "InMem Dim", Kind: query.KindDimension,
			Text: func(r memreport.TextureRecord) string { return FormatDimension(r.CurrentWidth, r.CurrentHeight) }},
		Width: 11,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "currentSize", Title: "InMem Size", Kind: query.KindNumber,
			Number: func(r memreport.TextureRecord) float64 { return float64(r.CurrentSizeKB) }},
		Width:  11,
		Format: func(r memreport.TextureRecord) string { return FormatKB(float64(r.CurrentSizeKB)) },
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "cookedDim", Title: "Cooked Dim", Kind: query.KindDimension,
			Text: func(r memreport.TextureRecord) string { return FormatDimension(r.CookedWidth, r.CookedHeight) }},
		Width: 11,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "cookedSize", Title: "Cooked Size", Kind: query.KindNumber,
			Number: func(r memreport.TextureRecord) float64 { return float64(r.CookedSizeKB) }},
		Width:  11,
		Format: func(r memreport.TextureRecord) string { return FormatKB(float64(r.CookedSizeKB)) },
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "format", Title: "Format", Kind: query.KindString,
			Text: func(r memreport.TextureRecord) string { return r.Format }},
		Width: 12, Filter: FilterText,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "lodGroup", Title: "LOD Group", Kind: query.KindString,
			Text: func(r memreport.TextureRecord) string { return r.LODGroup }},
		Width: 14, Filter: FilterText,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "streaming", Title: "Streaming", Kind: query.KindBool,
			Bool: func(r memreport.TextureRecord) bool { return r.Streaming }},
		Width: 9, Filter: FilterTriState,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "vt", Title: "VT", Kind: query.KindBool,
			Bool: func(r memreport.TextureRecord) bool { return r.VirtualTextured }},
		Width: 4, Filter: FilterTriState,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "usageCount", Title: "Usage", Kind: query.KindNumber,
			Number: func(r memreport.TextureRecord) float64 { return float64(r.UsageCount) }},
		Width: 6,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "numMips", Title: "Mips", Kind: query.KindNumber,
			Number: func(r memreport.TextureRecord) float64 { return float64(r.NumMips) }},
		Width: 5,
	},
	Field[memreport.TextureRecord]{
		Column: query.Column[memreport.TextureRecord]{Key: "uncompressed", Title: "Uncompressed", Kind: query.KindBool,
			Bool: func(r memreport.TextureRecord) bool { return r.Uncompressed }},
		Width: 12, Filter: FilterTriState,
	},
)

// TextureGroups lists group totals in report order.
var TextureGroups = newView[memreport.TextureGroupTotal]("Texture Groups",
	nil,
	Field[memreport.TextureGroupTotal]{
		Column: query.Column[memreport.TextureGroupTotal]{Key: "name", Title: "Texture Group", Kind: query.KindString,
			Text: func(g memreport.TextureGroupTotal) string { return g.Name }},
		Width: 40, Filter: FilterText,
	},
	Field[memreport.TextureGroupTotal]{
		Column: query.Column[memreport.TextureGroupTotal]{Key: "inMemSize", Title: "InMem Size", Kind: query.KindNumber,
			Number: func(g memreport.TextureGroupTotal) float64 { return g.InMemMB }},
		Width:  14,
		Format: func(g memreport.TextureGroupTotal) string { return FormatMB(g.InMemMB) },
	},
	Field[memreport.TextureGroupTotal]{
		Column: query.Column[memreport.TextureGroupTotal]{Key: "onDiskSize", Title: "OnDisk Size", Kind: query.KindNumber,
			Number: func(g memreport.TextureGroupTotal) float64 { return g.OnDiskMB }},
		Width:  14,
		Format: func(g memreport.TextureGroupTotal) string { return FormatMB(g.OnDiskMB) },
	},
)

// StaticMeshes lists object list rows, largest exclusive resource size first.
var StaticMeshes = newView("Static Meshes",
	query.SortSpec{{Column: "resExcKb", Direction: query.Desc}},
	Field[memreport.StaticMeshRecord]{
		Column: query.Column[memreport.StaticMeshRecord]{Key: "name", Title: "Name", Kind: query.KindString,
			Text: func(r memreport.StaticMeshRecord) string { return r.Name }},
		Width: 40, Filter: FilterText,
	},
	meshKB("numKb", "NumKb", func(r memreport.StaticMeshRecord) float64 { return r.NumKB }),
	meshKB("maxKb", "MaxKb", func(r memreport.StaticMeshRecord) float64 { return r.MaxKB }),
	meshKB("resExcKb", "ResExcKb", func(r memreport.StaticMeshRecord) float64 { return r.ResExclusiveKB }),
	meshKB("resExcDedSysKb", "ResExcDedSysKb", func(r memreport.StaticMeshRecord) float64 { return r.ResExclusiveDedicatedSystemKB }),
	meshKB("resExcDedVidKb", "ResExcDedVidKb", func(r memreport.StaticMeshRecord) float64 { return r.ResExclusiveDedicatedVideoKB }),
	meshKB("resExcUnkKb", "ResExcUnkKb", func(r memreport.StaticMeshRecord) float64 { return r.ResExclusiveUnknownKB }),
)

func meshKB(key, title string, get func(memreport.StaticMeshRecord) float64) Field[memreport.StaticMeshRecord] {
	return Field[memreport.StaticMeshRecord]{
		Column: query.Column[memreport.StaticMeshRecord]{Key: key, Title: title, Kind: query.KindNumber, Number: get},
		Width:  15,
		Format: func(r memreport.StaticMeshRecord) string { return FormatKB(get(r)) },
	}
}

// Platform lists the raw "Mem FromReport" lines in report order.
var Platform = newView[memreport.PlatformEntry]("Mem FromReport",
	nil,
	Field[memreport.PlatformEntry]{
		Column: query.Column[memreport.PlatformEntry]{Key: "name", Title: "Stat", Kind: query.KindString,
			Text: func(e memreport.PlatformEntry) string { return e.Name }},
		Width: 26,
	},
	Field[memreport.PlatformEntry]{
		Column: query.Column[memreport.PlatformEntry]{Key: "value", Title: "Value", Kind: query.KindString,
			Text: func(e memreport.PlatformEntry) string { return e.Value }},
		Width: 80, Filter: FilterText,
	},
)

// texturePath is what the texture name filter searches: the full object path, so
// "/Engine/" finds every engine texture.
func texturePath(r memreport.TextureRecord) string {
	if r.Path != "" {
		return r.Path
	}
	return r.Name
}
