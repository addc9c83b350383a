package domain

// ProjectSnapshot is the per-project view returned by workspace queries.
type ProjectSnapshot struct {
	// Name is the workspace-facing qualified project name.
	Name string `json:"name" yaml:"name"`

	// FilePath is the project definition file.
	FilePath string `json:"path" yaml:"path"`

	// Framework is the target framework moniker.
	Framework string `json:"framework" yaml:"framework"`

	// MetadataReferences are the library paths currently registered.
	MetadataReferences []string `json:"references" yaml:"references"`

	// ProjectReferences are the qualified names of referenced projects.
	ProjectReferences []string `json:"projectReferences" yaml:"projectReferences"`

	// SourceFiles are the registered document paths. Empty unless source
	// files were requested.
	SourceFiles []string `json:"sourceFiles,omitempty" yaml:"sourceFiles,omitempty"`
}

// WorkspaceSnapshot is a point-in-time view of every project the workspace
// currently holds.
type WorkspaceSnapshot struct {
	Projects []ProjectSnapshot `json:"projects" yaml:"projects"`
}

// ProjectSummary is the answer to a file-to-project lookup.
type ProjectSummary struct {
	// Name is the qualified name of the owning project.
	Name string `json:"name" yaml:"name"`

	// FilePath is the owning project's definition file.
	FilePath string `json:"path" yaml:"path"`

	// Framework is the owning project's target framework.
	Framework string `json:"framework" yaml:"framework"`
}
