// Package cmake drives CMake-based builds through the same staged
// lifecycle as autotools: configure, compile, install.
package cmake

import (
	"context"
	"path/filepath"

	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

const buildSubdir = "build"

// CMake wraps the cmake configure/build/install steps.
type CMake struct {
	runner buildsys.Runner
}

var _ buildsys.Strategy = (*CMake)(nil)

// New returns a ready-to-use CMake. A nil runner selects the default
// process runner.
func New(runner buildsys.Runner) *CMake {
	if runner == nil {
		runner = &buildsys.ExecRunner{}
	}
	return &CMake{runner: runner}
}

func (c *CMake) Name() string { return "cmake" }

func (c *CMake) Build(ctx context.Context, sourceDir string, bc *buildsys.Context) error {
	buildDir := filepath.Join(sourceDir, buildSubdir)
	if err := c.runner.Run(ctx, sourceDir, "cmake",
		"-S", ".", "-B", buildSubdir,
		"-DCMAKE_INSTALL_PREFIX="+bc.InstallPrefix); err != nil {
		return &buildsys.StageError{Stage: "configure", Err: err}
	}
	if err := c.runner.Run(ctx, sourceDir, "cmake", "--build", buildDir); err != nil {
		return &buildsys.StageError{Stage: "compile", Err: err}
	}
	if err := c.runner.Run(ctx, sourceDir, "cmake", "--install", buildDir); err != nil {
		return &buildsys.StageError{Stage: "install", Err: err}
	}
	return nil
}
