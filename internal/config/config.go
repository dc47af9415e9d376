// Package config loads the YAML build manifest: the shared context
// paths plus the ordered list of units to build.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alatiera/buildfarm/internal/registry"
	"github.com/alatiera/buildfarm/pkgs/buildsys"
	"github.com/alatiera/buildfarm/pkgs/buildsys/autotools"
	"github.com/alatiera/buildfarm/pkgs/buildsys/cmake"
)

// DefaultBranch is used when a unit entry omits its branch.
const DefaultBranch = "main"

// Manifest describes one pipeline run.
type Manifest struct {
	SourceRoot    string     `yaml:"source_root"`
	InstallPrefix string     `yaml:"install_prefix"`
	Units         []UnitSpec `yaml:"units"`
}

// UnitSpec is one unit entry as written in the manifest.
type UnitSpec struct {
	Name   string `yaml:"name"`
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch,omitempty"`
	Build  string `yaml:"build,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields and build kinds. Name uniqueness is
// enforced when the registry is built.
func (m *Manifest) Validate() error {
	if m.SourceRoot == "" {
		return errors.New("manifest: source_root is required")
	}
	if m.InstallPrefix == "" {
		return errors.New("manifest: install_prefix is required")
	}
	if len(m.Units) == 0 {
		return errors.New("manifest: units must be non-empty")
	}
	for i, u := range m.Units {
		if u.Name == "" {
			return fmt.Errorf("manifest: units[%d]: name is required", i)
		}
		if u.Repo == "" {
			return fmt.Errorf("manifest: units[%d] (%s): repo is required", i, u.Name)
		}
		if _, err := strategyFor(u.Build); err != nil {
			return fmt.Errorf("manifest: units[%d] (%s): %w", i, u.Name, err)
		}
	}
	return nil
}

// Registry builds the unit registry from the manifest, resolving each
// entry's build kind to a concrete strategy up front.
func (m *Manifest) Registry() (*registry.Registry, error) {
	reg := registry.New()
	for i, u := range m.Units {
		strategy, err := strategyFor(u.Build)
		if err != nil {
			return nil, fmt.Errorf("manifest: units[%d] (%s): %w", i, u.Name, err)
		}
		branch := u.Branch
		if branch == "" {
			branch = DefaultBranch
		}
		if err := reg.Register(u.Name, u.Repo, branch, strategy); err != nil {
			return nil, fmt.Errorf("manifest: units[%d]: %w", i, err)
		}
	}
	return reg, nil
}

// Context returns the build context the manifest describes.
func (m *Manifest) Context() *buildsys.Context {
	return &buildsys.Context{
		SourceRoot:    m.SourceRoot,
		InstallPrefix: m.InstallPrefix,
	}
}

func strategyFor(kind string) (buildsys.Strategy, error) {
	switch kind {
	case "", "autotools":
		return autotools.New(nil), nil
	case "cmake":
		return cmake.New(nil), nil
	}
	return nil, fmt.Errorf("unknown build kind %q", kind)
}
