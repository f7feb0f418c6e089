// Package config loads memscope's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/memscope/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # File Format
//
//	chunk_size = 4194304   # bytes per read
//	poll_seconds = 2       # 0 = default, negative disables watching
//	log_file = "~/.local/state/memscope/debug.log"
//
//	[sections.textures]
//	begin = 'MemReport: Begin command "ListTextures'
//	end = 'MemReport: End command "ListTextures'
//	header_skip = 2
//	case_sensitive = false
//
// [sections.platform] and [sections.static_meshes] take the same keys. Every key
// is optional; markers override the engine defaults only when non-empty.
//
// # Path Expansion
//
// Paths beginning with ~ are expanded to the user's home directory and made
// absolute.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and invalid TOML are returned
// wrapped ("open config", "read config", "parse config").
package config
