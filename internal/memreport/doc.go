// Package memreport segments engine memreport logs into sections and parses each
// section's lines into typed records.
//
// # Sections
//
// A memreport is the concatenated output of several console commands, each wrapped
// in marker lines:
//
//	MemReport: Begin command "ListTextures ..."
//	...
//	MemReport: End command "ListTextures ..."
//
// Extract scans the whole line slice with a capture flag. Markers match by prefix so
// trailing command arguments are tolerated. Blank lines and a fixed number of header
// rows per span are dropped. Repeated spans append in file order.
//
// # Line Grammars
//
//   - ListTextures rows: comma-separated, twelve fields (ParseTexture)
//   - ListTextures group totals: "Total <group> size: InMem= X MB OnDisk= Y MB" with
//     fewer than twelve fields (ParseGroupTotal)
//   - obj list rows: eight whitespace-separated fields (ParseStaticMesh)
//   - obj list summary: "N Objects (Total: 1.2M / Max: ...)" (ParseStaticMeshSummary)
//   - Mem FromReport: colon key/value lines and free text (ParsePlatform)
//
// Parsers never fail. Malformed numbers become zero, missing tokens become empty
// strings or false, and one bad line does not affect its neighbours.
//
// # Units
//
// Values are kept in the units the engine printed: KB for per-object rows, MB for
// texture group totals, and the bare magnitude of the static mesh summary. Display
// code converts.
package memreport
