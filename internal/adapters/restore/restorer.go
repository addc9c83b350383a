// Package restore runs the package restore command for projects with
// unresolved dependencies.
package restore

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"golang.org/x/sync/singleflight"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Restorer = (*Restorer)(nil)

// Restorer implements ports.Restorer by running the configured restore
// command with the project directory as working directory.
type Restorer struct {
	command []string
	logger  ports.Logger
	group   singleflight.Group
}

// NewRestorer creates a restorer running the given command.
func NewRestorer(command []string, logger ports.Logger) *Restorer {
	return &Restorer{
		command: command,
		logger:  logger,
	}
}

// Restore launches a restore for projectDir in the background. Concurrent
// restores for the same directory are collapsed into one run; every caller
// still gets its onFailure callback when that run fails. The refresh cycle
// that scheduled the restore is never blocked.
func (r *Restorer) Restore(ctx context.Context, projectDir string, onFailure func()) {
	go func() {
		_, err, _ := r.group.Do(projectDir, func() (any, error) {
			return nil, r.run(ctx, projectDir)
		})
		if err != nil {
			r.logger.Error(zerr.With(errors.Join(domain.ErrRestoreFailed, err), "project_dir", projectDir))
			if onFailure != nil {
				onFailure()
			}
		}
	}()
}

func (r *Restorer) run(ctx context.Context, projectDir string) error {
	if len(r.command) == 0 {
		return zerr.New("restore command is empty")
	}

	r.logger.Info("restoring packages in " + projectDir)

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...) //nolint:gosec // command comes from the settings file
	cmd.Dir = projectDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "restore command failed"), "exit_code", exitCode)
		return zerr.With(err, "output", strings.TrimSpace(output.String()))
	}

	r.logger.Debug("restore finished for " + projectDir)
	return nil
}
