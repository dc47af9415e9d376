package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// VCS defines the interface for version control operations.
type VCS interface {
	// Clone checks out branch from remote into dir. dir must not exist.
	Clone(ctx context.Context, remote, branch, dir string) error

	// Update fast-forwards the checkout in dir to the remote branch.
	// It fails if the local checkout has diverged.
	Update(ctx context.Context, dir, branch string) error

	// Head returns the commit hash the checkout in dir is at.
	Head(ctx context.Context, dir string) (string, error)

	// Tags returns all tags from the remote repository.
	Tags(ctx context.Context, remote string) ([]string, error)
}

// FetchError reports a failed clone or update.
type FetchError struct {
	Op     string // "clone" or "update"
	Remote string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Remote, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// gitVCS implements VCS using git.
type gitVCS struct {
	git string
}

// GitOption configures gitVCS.
type GitOption func(*gitVCS)

// WithGitPath sets a custom git executable path.
func WithGitPath(path string) GitOption {
	return func(g *gitVCS) {
		g.git = path
	}
}

// NewGitVCS creates a new git VCS instance.
func NewGitVCS(opts ...GitOption) VCS {
	g := &gitVCS{git: "git"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *gitVCS) Clone(ctx context.Context, remote, branch, dir string) error {
	if err := g.run(ctx, "", "clone", "--branch", branch, remote, dir); err != nil {
		return &FetchError{Op: "clone", Remote: remote, Err: err}
	}
	return nil
}

func (g *gitVCS) Update(ctx context.Context, dir, branch string) error {
	if err := g.run(ctx, dir, "fetch", "origin", branch); err != nil {
		return &FetchError{Op: "update", Err: err}
	}
	if err := g.run(ctx, dir, "merge", "--ff-only", "FETCH_HEAD"); err != nil {
		return &FetchError{Op: "update", Err: err}
	}
	return nil
}

func (g *gitVCS) Head(ctx context.Context, dir string) (string, error) {
	output, err := g.output(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return strings.TrimSpace(output), nil
}

func (g *gitVCS) Tags(ctx context.Context, remote string) ([]string, error) {
	output, err := g.output(ctx, "", "ls-remote", "--tags", "--refs", remote)
	if err != nil {
		return nil, fmt.Errorf("list remote tags: %w", err)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	var tags []string
	for _, line := range strings.Split(output, "\n") {
		// format: <hash>\trefs/tags/<tag>
		parts := strings.Split(line, "\t")
		if len(parts) == 2 {
			tag := strings.TrimPrefix(parts[1], "refs/tags/")
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (g *gitVCS) run(ctx context.Context, dir string, args ...string) error {
	_, err := g.output(ctx, dir, args...)
	return err
}

func (g *gitVCS) output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, g.git, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s", msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
