// Package registry holds the ordered set of source units a pipeline
// run builds.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

// Unit is one declared source dependency: where it lives, which ref to
// build, and how to install it. Units are immutable once registered;
// Name doubles as the checkout directory name under the source root.
type Unit struct {
	Name     string
	Repo     string
	Branch   string
	Strategy buildsys.Strategy
}

// DuplicateNameError reports a registration under an already-taken name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("unit %q already registered", e.Name)
}

// Registry is an ordered collection of units with unique names.
type Registry struct {
	units []Unit
	index map[string]int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a unit. The registry is left unchanged when the name
// is empty, the strategy is nil, or the name is already taken (in which
// case the error is a *DuplicateNameError).
func (r *Registry) Register(name, repo, branch string, strategy buildsys.Strategy) error {
	if name == "" {
		return errors.New("registry: unit name is empty")
	}
	if strategy == nil {
		return fmt.Errorf("registry: unit %q has no install strategy", name)
	}
	if _, ok := r.index[name]; ok {
		return &DuplicateNameError{Name: name}
	}
	r.index[name] = len(r.units)
	r.units = append(r.units, Unit{Name: name, Repo: repo, Branch: branch, Strategy: strategy})
	return nil
}

// List returns the units in declaration order.
func (r *Registry) List() []Unit {
	return slices.Clone(r.units)
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}
