package executor

import (
	"context"

	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

// fakeVCS implements vcs.VCS for unit testing.
type fakeVCS struct {
	cloneFunc  func(ctx context.Context, remote, branch, dir string) error
	updateFunc func(ctx context.Context, dir, branch string) error
	headFunc   func(ctx context.Context, dir string) (string, error)
	tagsFunc   func(ctx context.Context, remote string) ([]string, error)

	cloneCalls  int
	updateCalls int
}

func (f *fakeVCS) Clone(ctx context.Context, remote, branch, dir string) error {
	f.cloneCalls++
	if f.cloneFunc != nil {
		return f.cloneFunc(ctx, remote, branch, dir)
	}
	return nil
}

func (f *fakeVCS) Update(ctx context.Context, dir, branch string) error {
	f.updateCalls++
	if f.updateFunc != nil {
		return f.updateFunc(ctx, dir, branch)
	}
	return nil
}

func (f *fakeVCS) Head(ctx context.Context, dir string) (string, error) {
	if f.headFunc != nil {
		return f.headFunc(ctx, dir)
	}
	return "0000000000000000000000000000000000000000", nil
}

func (f *fakeVCS) Tags(ctx context.Context, remote string) ([]string, error) {
	if f.tagsFunc != nil {
		return f.tagsFunc(ctx, remote)
	}
	return nil, nil
}

// fakeStrategy records builds and returns a fixed error.
type fakeStrategy struct {
	buildErr error
	builds   int
	lastDir  string
}

func (f *fakeStrategy) Name() string { return "fake" }

func (f *fakeStrategy) Build(ctx context.Context, sourceDir string, bc *buildsys.Context) error {
	f.builds++
	f.lastDir = sourceDir
	return f.buildErr
}
