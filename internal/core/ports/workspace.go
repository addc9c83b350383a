package ports

import "go.trai.ch/attune/internal/core/domain"

// ProjectHandle is the opaque identity the workspace assigns to a registered
// project. The engine only stores handles and passes them back for removal.
type ProjectHandle string

// ReferenceHandle is the opaque identity of a registered metadata reference.
type ReferenceHandle string

// DocumentHandle is the opaque identity of a registered source document.
type DocumentHandle string

// Workspace is the compilation workspace mutation sink. All calls are
// keyed by project identity and must be idempotent; add calls are batched per
// project per refresh cycle, remove calls follow after the adds.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// AddProject registers a project and returns its identity handle.
	AddProject(info domain.ProjectInfo) (ProjectHandle, error)

	// RemoveProject removes a project and everything registered under it.
	RemoveProject(project ProjectHandle) error

	// AddMetadataReferences registers library references for a project.
	// The returned handles line up index-for-index with paths.
	AddMetadataReferences(project ProjectHandle, paths []string) ([]ReferenceHandle, error)

	// RemoveMetadataReference removes a single library reference.
	RemoveMetadataReference(project ProjectHandle, ref ReferenceHandle) error

	// AddProjectReferences registers references to other workspace
	// projects, identified by their handles.
	AddProjectReferences(project ProjectHandle, targets []ProjectHandle) error

	// RemoveProjectReference removes a single project-to-project reference.
	RemoveProjectReference(project ProjectHandle, target ProjectHandle) error

	// SetCompilationConfig applies the compilation configuration.
	SetCompilationConfig(project ProjectHandle, cfg domain.CompilationConfig) error

	// SetParseConfig applies the parse-level configuration.
	SetParseConfig(project ProjectHandle, cfg domain.ParseConfig) error

	// AddDocuments registers source documents for a project. The returned
	// handles line up index-for-index with paths.
	AddDocuments(project ProjectHandle, paths []string) ([]DocumentHandle, error)

	// RemoveDocument removes a single source document.
	RemoveDocument(project ProjectHandle, doc DocumentHandle) error
}

// WorkspaceReader is the outbound query surface over the workspace model.
type WorkspaceReader interface {
	// Snapshot returns a point-in-time view of every registered project.
	Snapshot(includeSourceFiles bool) domain.WorkspaceSnapshot

	// ProjectByPath finds the project owning the given file, by project
	// file path or registered document path.
	ProjectByPath(filePath string) (domain.ProjectSummary, bool)
}
