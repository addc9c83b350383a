package ports

// FileWatcher registers interest in individual files on disk. Registration is
// fire-and-forget: re-registering the same path replaces the callback and is
// idempotent. Implementations are expected to debounce rapid successive
// writes before invoking callbacks.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type FileWatcher interface {
	// Watch installs onChange for path. The callback receives the path
	// that changed.
	Watch(path string, onChange func(path string)) error

	// Close stops the watcher and releases all resources.
	Close() error
}
