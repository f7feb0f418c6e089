package tables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memscope/internal/memreport"
	"github.com/five82/memscope/internal/query"
)

func textureNames(rows []memreport.TextureRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func sampleTextures() []memreport.TextureRecord {
	return []memreport.TextureRecord{
		{Name: "Small", CurrentWidth: 64, CurrentHeight: 64, CurrentSizeKB: 16, Format: "DXT1", LODGroup: "UI", Streaming: true},
		{Name: "Huge", CurrentWidth: 4096, CurrentHeight: 4096, CurrentSizeKB: 65536, Format: "FloatRGBA", LODGroup: "World", Uncompressed: true},
		{Name: "Medium", CurrentWidth: 1024, CurrentHeight: 512, CurrentSizeKB: 2048, Format: "DXT5", LODGroup: "World", Streaming: true, VirtualTextured: true},
	}
}

func TestTextures_DefaultSortIsCurrentSizeDesc(t *testing.T) {
	assert.Equal(t, query.SortSpec{{Column: "currentSize", Direction: query.Desc}}, Textures.DefaultSort())

	page, err := Textures.Apply(sampleTextures(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Huge", "Medium", "Small"}, textureNames(page.Rows))
	assert.Equal(t, Textures.DefaultSort(), page.Sort)
	assert.Equal(t, 3, page.Total)
}

func TestDefaultSort_ReturnsCopy(t *testing.T) {
	spec := Textures.DefaultSort()
	spec[0].Direction = query.Asc
	assert.Equal(t, query.Desc, Textures.DefaultSort()[0].Direction)
}

func TestEffectiveSort(t *testing.T) {
	custom := query.SortSpec{{Column: "name", Direction: query.Asc}}
	assert.Equal(t, custom, Textures.EffectiveSort(custom))
	assert.Equal(t, Textures.DefaultSort(), Textures.EffectiveSort(nil))
	assert.Empty(t, TextureGroups.EffectiveSort(nil))
	assert.Equal(t, StaticMeshes.DefaultSort(), StaticMeshes.EffectiveSort(query.SortSpec{}))
}

func TestTextures_FilterAndSort(t *testing.T) {
	filter := query.FilterSpec{
		"lodGroup":  query.Contains("world"),
		"streaming": query.Tri(query.Yes),
	}
	page, err := Textures.Apply(sampleTextures(), query.SortSpec{{Column: "name", Direction: query.Asc}}, filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium"}, textureNames(page.Rows))
	assert.Equal(t, 3, page.Total)

	page, err = Textures.Apply(sampleTextures(), nil, query.FilterSpec{"uncompressed": query.Tri(query.No)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium", "Small"}, textureNames(page.Rows))
}

func TestTextures_NameFilterMatchesPath(t *testing.T) {
	items := []memreport.TextureRecord{
		{Name: "DefaultBloomKernel", Path: "/Engine/EngineMaterials/DefaultBloomKernel"},
		{Name: "T_Rock", Path: "/Game/Env/T_Rock"},
		{Name: "Orphan"},
	}
	page, err := Textures.Apply(items, nil, query.FilterSpec{"name": query.Contains("/engine/")})
	require.NoError(t, err)
	assert.Equal(t, []string{"DefaultBloomKernel"}, textureNames(page.Rows))

	page, err = Textures.Apply(items, nil, query.FilterSpec{"name": query.Contains("orph")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Orphan"}, textureNames(page.Rows))
}

func TestTextures_DimensionSort(t *testing.T) {
	page, err := Textures.Apply(sampleTextures(), query.SortSpec{{Column: "currentDim", Direction: query.Asc}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Small", "Medium", "Huge"}, textureNames(page.Rows))
}

func TestGroupsAndPlatform_KeepSourceOrder(t *testing.T) {
	groups := []memreport.TextureGroupTotal{{Name: "B", InMemMB: 1}, {Name: "A", InMemMB: 5}, {Name: "Total Size", InMemMB: 6}}
	page, err := TextureGroups.Apply(groups, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, groups, page.Rows)

	entries := []memreport.PlatformEntry{{Value: "z"}, {Name: "Platform", Value: "Windows"}, {Value: "a"}}
	pp, err := Platform.Apply(entries, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entries, pp.Rows)

	pp, err = Platform.Apply(entries, nil, query.FilterSpec{"value": query.Contains("WIN")})
	require.NoError(t, err)
	assert.Equal(t, entries[1:2], pp.Rows)
}

func TestStaticMeshes_DefaultSort(t *testing.T) {
	meshes := []memreport.StaticMeshRecord{
		{Name: "A", ResExclusiveKB: 10},
		{Name: "B", ResExclusiveKB: 300},
		{Name: "C", ResExclusiveKB: 10},
		{Name: "D", ResExclusiveKB: 50},
	}
	page, err := StaticMeshes.Apply(meshes, nil, nil)
	require.NoError(t, err)
	names := make([]string, len(page.Rows))
	for i, r := range page.Rows {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
}

func TestApply_UnsupportedColumn(t *testing.T) {
	_, err := Textures.Apply(sampleTextures(), query.SortSpec{{Column: "bogus"}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, query.ErrUnsupportedColumn))

	_, err = StaticMeshes.Apply(nil, nil, query.FilterSpec{"bogus": query.Contains("x")})
	assert.ErrorIs(t, err, query.ErrUnsupportedColumn)

	assert.Panics(t, func() {
		Textures.MustApply(sampleTextures(), query.SortSpec{{Column: "bogus"}}, nil)
	})
	assert.NotPanics(t, func() {
		Textures.MustApply(sampleTextures(), nil, nil)
	})
}

func TestCells(t *testing.T) {
	rec := memreport.TextureRecord{
		Name: "DefaultBloomKernel", CookedWidth: 2048, CookedHeight: 2048, CookedSizeKB: 32768,
		CurrentWidth: 2048, CurrentHeight: 2048, CurrentSizeKB: 32768,
		Format: "FloatRGBA", LODGroup: "World", NumMips: 1, Uncompressed: true,
	}
	assert.Equal(t, []string{
		"DefaultBloomKernel", "2048x2048", "32.77 MB", "2048x2048", "32.77 MB",
		"FloatRGBA", "World", "NO", "NO", "0", "1", "YES",
	}, Textures.Cells(rec))

	assert.Equal(t, []string{"World", "12.5 MB", "3 MB"},
		TextureGroups.Cells(memreport.TextureGroupTotal{Name: "World", InMemMB: 12.5, OnDiskMB: 3}))

	assert.Equal(t, "1.50 MB", StaticMeshes.Cells(memreport.StaticMeshRecord{NumKB: 1500})[1])
}

func TestFieldsMatchRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"name", "currentDim", "currentSize", "cookedDim", "cookedSize", "format",
		"lodGroup", "streaming", "vt", "usageCount", "numMips", "uncompressed",
	}, Textures.registry.Keys())
	assert.Equal(t, []string{"name", "inMemSize", "onDiskSize"}, TextureGroups.registry.Keys())
	assert.Equal(t, []string{"name", "numKb", "maxKb", "resExcKb", "resExcDedSysKb", "resExcDedVidKb", "resExcUnkKb"}, StaticMeshes.registry.Keys())
	assert.Equal(t, []string{"name", "value"}, Platform.registry.Keys())

	f, ok := Textures.Field("vt")
	require.True(t, ok)
	assert.Equal(t, FilterTriState, f.Filter)
	_, ok = Textures.Field("missing")
	assert.False(t, ok)
}

func TestSummaryRows(t *testing.T) {
	row := TextureSummaryRow(42)
	require.Len(t, row, len(Textures.Fields()))
	assert.Equal(t, "Count: 42 textures", row[0])

	mesh := StaticMeshSummaryRow(memreport.StaticMeshSummary{ObjectCount: 3, TotalM: 12.3, MaxM: 20, ResM: 0.5})
	require.Len(t, mesh, len(StaticMeshes.Fields()))
	assert.Equal(t, "Count: 3", mesh[0])
	assert.Equal(t, "Total: 12.3M", mesh[1])
	assert.Equal(t, "Max: 20M", mesh[2])
	assert.Equal(t, "Res: 0.5M", mesh[3])
	assert.Equal(t, "ResUnknown: 0M", mesh[6])

	overview := PlatformOverview(memreport.PlatformSummary{Platform: "Windows", PhysicalMemory: "1 MB"})
	assert.Equal(t, []memreport.PlatformEntry{
		{Name: "Platform", Value: "Windows"},
		{Name: "Physical Memory", Value: "1 MB"},
		{Name: "Virtual Memory", Value: ""},
	}, overview)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00 MB", FormatKB(0))
	assert.Equal(t, "32.77 MB", FormatKB(32768))
	assert.Equal(t, "YES", FormatBool(true))
	assert.Equal(t, "NO", FormatBool(false))
	assert.Equal(t, "256x512", FormatDimension(256, 512))
	assert.Equal(t, "7.25 MB", FormatMB(7.25))
}
