// Package app is the composition root of memscope.
//
// Run loads configuration and preferences, sets up logging, validates the report
// path and then either dumps the parsed report (-dump) or hands over to the TUI.
//
//	Run()
//	 ├─> config.Load()     Read ~/.config/memscope/config.toml
//	 ├─> logging.Setup()   Debug log file, if any
//	 ├─> CheckExtension()  .memreport or .txt only
//	 ├─> export.Write()    -dump mode: print and exit
//	 └─> ui.Run()          TUI (blocks)
//	      └─> StartWatcher()  background file watch
//
// # Loading
//
// Loader.Load stats the file, reads it with linereader and parses it with
// memreport.Parse. It is handed to the UI as a function so that every load, first
// or later, goes through state.Store's generation check.
//
// # Watching
//
// StartWatcher polls the committed file's size and modification time. A change
// asks the UI to reload. Consecutive stat failures back off exponentially up to
// 30 seconds; the first failure in a run is logged.
package app
