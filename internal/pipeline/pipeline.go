// Package pipeline runs every registered unit in declaration order and
// collects per-unit outcomes.
package pipeline

import (
	"context"

	"github.com/qiniu/x/log"

	"github.com/alatiera/buildfarm/internal/executor"
	"github.com/alatiera/buildfarm/internal/registry"
	"github.com/alatiera/buildfarm/pkgs/buildsys"
)

// Ensurer processes a single unit. *executor.Executor is the production
// implementation.
type Ensurer interface {
	Ensure(ctx context.Context, unit registry.Unit, bc *buildsys.Context) executor.Result
}

// Report maps unit names to their outcomes, remembering declaration order.
type Report struct {
	results map[string]executor.Result
	order   []string
}

func newReport(n int) *Report {
	return &Report{results: make(map[string]executor.Result, n)}
}

func (r *Report) add(name string, res executor.Result) {
	r.results[name] = res
	r.order = append(r.order, name)
}

// Result returns the outcome recorded for name.
func (r *Report) Result(name string) (executor.Result, bool) {
	res, ok := r.results[name]
	return res, ok
}

// Names returns unit names in declaration order.
func (r *Report) Names() []string {
	return r.order
}

// Failed reports whether any unit failed.
func (r *Report) Failed() bool {
	for _, res := range r.results {
		if res.Status == executor.Failed {
			return true
		}
	}
	return false
}

// FailedCount returns how many units failed.
func (r *Report) FailedCount() int {
	n := 0
	for _, res := range r.results {
		if res.Status == executor.Failed {
			n++
		}
	}
	return n
}

// Run processes every unit strictly in declaration order: later units
// may read artifacts earlier ones installed into the shared prefix.
// A failed unit is recorded and the run continues with the next one.
func Run(ctx context.Context, exec Ensurer, reg *registry.Registry, bc *buildsys.Context) *Report {
	report := newReport(reg.Len())
	for _, unit := range reg.List() {
		log.Infof("building %s (%s@%s)", unit.Name, unit.Repo, unit.Branch)
		res := exec.Ensure(ctx, unit, bc)
		switch res.Status {
		case executor.Failed:
			log.Errorf("%s failed at %s: %v", unit.Name, res.Reason, res.Err)
		case executor.Skipped:
			log.Infof("%s is up to date, skipped", unit.Name)
		default:
			log.Infof("%s installed", unit.Name)
		}
		report.add(unit.Name, res)
	}
	return report
}
