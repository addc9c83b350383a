package domain

import "time"

// DefaultDebounceWindow is the coalescing window applied to file-watch
// events before a refresh cycle is triggered.
const DefaultDebounceWindow = 200 * time.Millisecond

// Settings is the engine configuration loaded from the workspace settings
// file. All global flags the engine honors live here; the engine itself keeps
// no process-global state.
type Settings struct {
	// Root is the workspace root directory project discovery runs against.
	Root string

	// Enabled gates the whole synchronization engine.
	Enabled bool

	// EnablePackageRestore permits automatic restore when a project has
	// unresolved package dependencies. Defaults to false.
	EnablePackageRestore bool

	// DebounceWindow is the file-watch coalescing window.
	DebounceWindow time.Duration

	// RestoreCommand is the command invoked to restore a project's
	// packages, run with the project directory as working directory.
	RestoreCommand []string
}

// DefaultSettings returns the settings applied when no settings file exists.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:                 root,
		Enabled:              true,
		EnablePackageRestore: false,
		DebounceWindow:       DefaultDebounceWindow,
		RestoreCommand:       []string{"dotnet", "restore"},
	}
}
