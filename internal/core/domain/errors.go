package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProjectContexts is returned when the toolchain resolves no
	// contexts for a project directory.
	ErrNoProjectContexts = zerr.New("project resolved no contexts")

	// ErrProjectNotFound is returned when a lookup names a project the
	// state cache does not track.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrProjectFileReadFailed is returned when a project definition file
	// cannot be read.
	ErrProjectFileReadFailed = zerr.New("failed to read project file")

	// ErrProjectFileParseFailed is returned when a project definition file
	// cannot be parsed.
	ErrProjectFileParseFailed = zerr.New("failed to parse project file")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be
	// parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrEngineDisabled is returned when a refresh is requested while the
	// engine is disabled by configuration.
	ErrEngineDisabled = zerr.New("synchronization engine is disabled")

	// ErrDiscoveryFailed is returned when project discovery fails against
	// the workspace root.
	ErrDiscoveryFailed = zerr.New("project discovery failed")

	// ErrWorkspaceRejected is returned when the workspace sink rejects a
	// mutation.
	ErrWorkspaceRejected = zerr.New("workspace rejected mutation")

	// ErrWatchRegistrationFailed is returned when a file-watch callback
	// cannot be installed.
	ErrWatchRegistrationFailed = zerr.New("failed to register file watch")

	// ErrRestoreFailed is returned when the restore subprocess exits with
	// an error.
	ErrRestoreFailed = zerr.New("package restore failed")

	// ErrHandleMismatch is returned when the workspace returns a handle
	// batch that does not line up with the requested keys.
	ErrHandleMismatch = zerr.New("workspace returned mismatched handle batch")
)
