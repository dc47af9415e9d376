package buildsys

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/builder"}
	override := map[string]string{"PATH": "/opt/bin", "PREFIX": "/opt"}

	got := mergeEnv(base, override)
	want := []string{"HOME=/home/builder", "PATH=/opt/bin", "PREFIX=/opt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeEnv = %v, want %v", got, want)
	}
}

func TestStageErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 2")
	err := &StageError{Stage: "configure", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("StageError does not unwrap to the inner error")
	}
	if got := err.Error(); got != "configure: exit status 2" {
		t.Errorf("Error() = %q", got)
	}
}

func TestContextEnsureDirs(t *testing.T) {
	tmp := t.TempDir()
	c := &Context{
		SourceRoot:    filepath.Join(tmp, "src"),
		InstallPrefix: filepath.Join(tmp, "prefix"),
	}
	if err := c.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	// Idempotent on existing dirs.
	if err := c.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs (second): %v", err)
	}

	if err := (&Context{InstallPrefix: "/tmp/out"}).EnsureDirs(); err == nil {
		t.Error("EnsureDirs succeeded without a source root")
	}
	if err := (&Context{SourceRoot: "/tmp/src"}).EnsureDirs(); err == nil {
		t.Error("EnsureDirs succeeded without an install prefix")
	}
}
