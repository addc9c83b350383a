package domain

const (
	// ProjectFileName is the name of a project definition file.
	ProjectFileName = "project.yaml"

	// LockFileName is the name of the lock manifest restore produces next
	// to a project definition file.
	LockFileName = "project.lock.yaml"

	// SettingsFileName is the name of the workspace settings file.
	SettingsFileName = "attune.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
