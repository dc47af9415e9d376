// Package buildsys defines the install strategies applied to a unit's
// source tree and the shared context they build against.
package buildsys

import (
	"context"
	"fmt"
	"os"
)

// Context carries the shared paths every install strategy builds against.
// It is owned by the pipeline runner and must not be mutated once a run
// has started.
type Context struct {
	// SourceRoot is the directory under which all units are checked out.
	SourceRoot string

	// InstallPrefix is the directory install steps target.
	InstallPrefix string
}

// EnsureDirs creates the source root and install prefix if absent.
func (c *Context) EnsureDirs() error {
	if c.SourceRoot == "" {
		return fmt.Errorf("source root is not set")
	}
	if c.InstallPrefix == "" {
		return fmt.Errorf("install prefix is not set")
	}
	if err := os.MkdirAll(c.SourceRoot, 0o755); err != nil {
		return fmt.Errorf("create source root: %w", err)
	}
	if err := os.MkdirAll(c.InstallPrefix, 0o755); err != nil {
		return fmt.Errorf("create install prefix: %w", err)
	}
	return nil
}

// Strategy captures shared capabilities of install strategies
// (Autotools, CMake, etc). A strategy drives a unit's source tree
// through its build stages in order; a failed stage ends the build and
// later stages are never attempted.
type Strategy interface {
	// Name returns the strategy kind as written in manifests.
	Name() string

	// Build runs all stages against sourceDir, installing into
	// bc.InstallPrefix. A stage failure is reported as *StageError.
	Build(ctx context.Context, sourceDir string, bc *Context) error
}

// StageError reports which build stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }
