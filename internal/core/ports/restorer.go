package ports

import "context"

// Restorer performs the out-of-process package restore for a project
// directory. Restore is asynchronous and fire-and-forget: there is no success
// callback, completion is observed through the lock manifest changing on
// disk. Implementations de-duplicate concurrent requests for the same
// directory.
//
//go:generate mockgen -source=restorer.go -destination=mocks/mock_restorer.go -package=mocks
type Restorer interface {
	// Restore fetches the packages for projectDir. onFailure is invoked if
	// the restore operation fails; it is never invoked on success.
	Restore(ctx context.Context, projectDir string, onFailure func())
}
