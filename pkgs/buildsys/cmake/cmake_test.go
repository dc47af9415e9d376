package cmake

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

type fakeRunner struct {
	calls    [][]string
	failCall int // 1-based index of the call to fail, 0 = never
}

func (r *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.failCall == len(r.calls) {
		return errors.New("exit status 1")
	}
	return nil
}

func TestBuildStageOrder(t *testing.T) {
	runner := &fakeRunner{}
	c := New(runner)
	dir := t.TempDir()
	bc := &buildsys.Context{InstallPrefix: "/opt/prefix"}

	if err := c.Build(context.Background(), dir, bc); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(runner.calls) != 3 {
		t.Fatalf("got %d calls, want 3: %v", len(runner.calls), runner.calls)
	}

	configure := strings.Join(runner.calls[0], " ")
	if !strings.Contains(configure, "-DCMAKE_INSTALL_PREFIX=/opt/prefix") {
		t.Errorf("configure call %q lacks install prefix", configure)
	}
	buildDir := filepath.Join(dir, "build")
	if got := strings.Join(runner.calls[1], " "); got != "cmake --build "+buildDir {
		t.Errorf("compile call = %q", got)
	}
	if got := strings.Join(runner.calls[2], " "); got != "cmake --install "+buildDir {
		t.Errorf("install call = %q", got)
	}
}

func TestBuildStopsAtFailedStage(t *testing.T) {
	cases := []struct {
		failCall  int
		wantStage string
	}{
		{1, "configure"},
		{2, "compile"},
		{3, "install"},
	}
	for _, tc := range cases {
		t.Run(tc.wantStage, func(t *testing.T) {
			runner := &fakeRunner{failCall: tc.failCall}
			c := New(runner)

			err := c.Build(context.Background(), t.TempDir(), &buildsys.Context{InstallPrefix: "/opt"})
			var stageErr *buildsys.StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("Build error = %v, want *StageError", err)
			}
			if stageErr.Stage != tc.wantStage {
				t.Errorf("failed stage = %q, want %q", stageErr.Stage, tc.wantStage)
			}
			if len(runner.calls) != tc.failCall {
				t.Errorf("got %d calls, want %d", len(runner.calls), tc.failCall)
			}
		})
	}
}
