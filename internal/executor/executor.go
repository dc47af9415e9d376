// Package executor ensures a unit's source is present and drives its
// install strategy.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/qiniu/x/log"

	"github.com/alatiera/buildfarm/internal/registry"
	"github.com/alatiera/buildfarm/internal/vcs"
	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

// Status classifies a unit's outcome.
type Status int

const (
	Success Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "ok"
}

// Result is the per-unit outcome of an Ensure call. For Failed results
// Reason names the phase that broke ("clone", "configure", ...) and Err
// carries the underlying error.
type Result struct {
	Status Status
	Reason string
	Err    error
}

func (r Result) String() string {
	if r.Status == Failed {
		if r.Err != nil {
			return fmt.Sprintf("failed (%s: %v)", r.Reason, r.Err)
		}
		return fmt.Sprintf("failed (%s)", r.Reason)
	}
	return r.Status.String()
}

func failed(reason string, err error) Result {
	return Result{Status: Failed, Reason: reason, Err: err}
}

// Options tunes executor behavior.
type Options struct {
	// SkipUpToDate skips the build when the checkout is at the commit
	// recorded by the last successful build. Off by default: a plain
	// re-run rebuilds every unit.
	SkipUpToDate bool
}

// Executor processes single units against a shared build context.
type Executor struct {
	vcs  vcs.VCS
	opts Options
}

func New(v vcs.VCS, opts Options) *Executor {
	return &Executor{vcs: v, opts: opts}
}

// Ensure makes the unit's checkout exist at its branch and runs the
// unit's install strategy. A missing checkout is cloned; an existing
// one is fast-forwarded, and an update failure is non-fatal: the build
// proceeds on the checkout as-is. Re-invoking on an already-built unit
// at worst rebuilds it.
func (e *Executor) Ensure(ctx context.Context, unit registry.Unit, bc *buildsys.Context) Result {
	dir := filepath.Join(bc.SourceRoot, unit.Name)

	branch := unit.Branch
	if branch == vcs.Latest {
		resolved, err := vcs.ResolveLatest(ctx, e.vcs, unit.Repo)
		if err != nil {
			return failed("resolve", err)
		}
		log.Debugf("%s: resolved latest to %s", unit.Name, resolved)
		branch = resolved
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := e.vcs.Clone(ctx, unit.Repo, branch, dir); err != nil {
			return failed("clone", err)
		}
	} else {
		if err := e.vcs.Update(ctx, dir, branch); err != nil {
			log.Warnf("%s: update failed, building existing checkout: %v", unit.Name, err)
		}
	}

	if e.opts.SkipUpToDate {
		if head, err := e.vcs.Head(ctx, dir); err == nil {
			if s, err := readStamp(dir); err == nil && s.Commit == head {
				return Result{Status: Skipped}
			}
		}
	}

	if err := unit.Strategy.Build(ctx, dir, bc); err != nil {
		var stageErr *buildsys.StageError
		if errors.As(err, &stageErr) {
			return failed(stageErr.Stage, stageErr.Err)
		}
		return failed("build", err)
	}

	if head, err := e.vcs.Head(ctx, dir); err == nil {
		if err := writeStamp(dir, &stamp{Commit: head, BuildTime: time.Now()}); err != nil {
			log.Warnf("%s: write build stamp: %v", unit.Name, err)
		}
	}
	return Result{Status: Success}
}
