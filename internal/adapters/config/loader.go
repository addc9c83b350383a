// Package config provides the settings loader for attune.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads attune.yaml settings files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load locates the settings file by walking up from cwd and returns the
// effective settings. When no settings file exists anywhere up the tree,
// defaults rooted at cwd apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settingsPath, found := l.findSettings(cwd)
	if !found {
		return domain.DefaultSettings(cwd), nil
	}

	data, err := os.ReadFile(settingsPath) // #nosec G304 -- path comes from the directory walk above
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", settingsPath)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", settingsPath)
	}

	return l.merge(settingsPath, &file), nil
}

// findSettings walks from cwd toward the filesystem root looking for the
// nearest attune.yaml.
func (l *Loader) findSettings(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// merge overlays the file's values on the defaults. The workspace root
// defaults to the directory containing the settings file.
func (l *Loader) merge(settingsPath string, file *SettingsFile) *domain.Settings {
	root := filepath.Dir(settingsPath)
	if file.Root != "" {
		if filepath.IsAbs(file.Root) {
			root = filepath.Clean(file.Root)
		} else {
			root = filepath.Join(filepath.Dir(settingsPath), file.Root)
		}
	}

	settings := domain.DefaultSettings(root)

	if file.Enabled != nil {
		settings.Enabled = file.Enabled.Bool()
	}
	settings.EnablePackageRestore = file.EnablePackageRestore.Bool()

	if file.DebounceWindow != "" {
		window, err := time.ParseDuration(file.DebounceWindow)
		if err != nil || window <= 0 {
			l.Logger.Warn(fmt.Sprintf("invalid debounceWindow %q in %s, using default", file.DebounceWindow, settingsPath))
		} else {
			settings.DebounceWindow = window
		}
	}

	if len(file.RestoreCommand) > 0 {
		settings.RestoreCommand = file.RestoreCommand
	}

	return settings
}
