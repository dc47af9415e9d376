package vcs

import (
	"context"
)

// mockVCS implements VCS for unit testing.
type mockVCS struct {
	cloneFunc  func(ctx context.Context, remote, branch, dir string) error
	updateFunc func(ctx context.Context, dir, branch string) error
	headFunc   func(ctx context.Context, dir string) (string, error)
	tagsFunc   func(ctx context.Context, remote string) ([]string, error)
}

func (m *mockVCS) Clone(ctx context.Context, remote, branch, dir string) error {
	if m.cloneFunc != nil {
		return m.cloneFunc(ctx, remote, branch, dir)
	}
	return nil
}

func (m *mockVCS) Update(ctx context.Context, dir, branch string) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, dir, branch)
	}
	return nil
}

func (m *mockVCS) Head(ctx context.Context, dir string) (string, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx, dir)
	}
	return "", nil
}

func (m *mockVCS) Tags(ctx context.Context, remote string) ([]string, error) {
	if m.tagsFunc != nil {
		return m.tagsFunc(ctx, remote)
	}
	return nil, nil
}
