// Package autotools wraps the classic configure/make/make-install workflow.
package autotools

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

// Stage names reported on failure, in execution order.
const (
	StageBootstrap = "bootstrap"
	StageConfigure = "configure"
	StageCompile   = "compile"
	StageInstall   = "install"
)

// AutoTools drives Autotools-style builds.
type AutoTools struct {
	runner buildsys.Runner
}

var _ buildsys.Strategy = (*AutoTools)(nil)

// New returns a ready-to-use AutoTools. A nil runner selects the
// default process runner.
func New(runner buildsys.Runner) *AutoTools {
	if runner == nil {
		runner = &buildsys.ExecRunner{}
	}
	return &AutoTools{runner: runner}
}

func (a *AutoTools) Name() string { return "autotools" }

// Build runs bootstrap (only when the tree carries no configure script),
// configure with the install prefix, make, and make install. Each stage
// is a prerequisite for the next.
func (a *AutoTools) Build(ctx context.Context, sourceDir string, bc *buildsys.Context) error {
	if _, err := os.Stat(filepath.Join(sourceDir, "configure")); os.IsNotExist(err) {
		if err := a.bootstrap(ctx, sourceDir); err != nil {
			return &buildsys.StageError{Stage: StageBootstrap, Err: err}
		}
	}
	if err := a.runner.Run(ctx, sourceDir, "./configure", "--prefix="+bc.InstallPrefix); err != nil {
		return &buildsys.StageError{Stage: StageConfigure, Err: err}
	}
	if err := a.runner.Run(ctx, sourceDir, "make"); err != nil {
		return &buildsys.StageError{Stage: StageCompile, Err: err}
	}
	if err := a.runner.Run(ctx, sourceDir, "make", "install"); err != nil {
		return &buildsys.StageError{Stage: StageInstall, Err: err}
	}
	return nil
}

// bootstrap generates the configure script, preferring the project's own
// autogen.sh over plain autoreconf.
func (a *AutoTools) bootstrap(ctx context.Context, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "autogen.sh")); err == nil {
		return a.runner.Run(ctx, dir, "./autogen.sh")
	}
	return a.runner.Run(ctx, dir, "autoreconf", "-fiv")
}
