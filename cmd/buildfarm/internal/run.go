package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alatiera/buildfarm/internal/config"
	"github.com/alatiera/buildfarm/internal/executor"
	"github.com/alatiera/buildfarm/internal/lockfile"
	"github.com/alatiera/buildfarm/internal/pipeline"
	"github.com/alatiera/buildfarm/internal/vcs"
)

var (
	runManifest  string
	runSkipBuilt bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the build pipeline",
	Long: `Run builds every unit in the manifest in declaration order. A unit's
failure is recorded and the run continues; the exit status is non-zero
if any unit failed.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runManifest, "manifest", "m", defaultManifest, "Path to the build manifest")
	runCmd.Flags().BoolVar(&runSkipBuilt, "skip-built", false, "Skip units already built at the current commit")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	m, err := config.Load(runManifest)
	if err != nil {
		return err
	}
	reg, err := m.Registry()
	if err != nil {
		return err
	}
	bc := m.Context()
	if err := bc.EnsureDirs(); err != nil {
		return err
	}

	unlock, err := lockfile.Lock(filepath.Join(bc.SourceRoot, ".lock"))
	if err != nil {
		return err
	}
	defer unlock()

	exec := executor.New(vcs.NewGitVCS(), executor.Options{SkipUpToDate: runSkipBuilt})
	report := pipeline.Run(context.Background(), exec, reg, bc)

	fmt.Print(summary(report))
	if report.Failed() {
		return fmt.Errorf("%d of %d units failed", report.FailedCount(), reg.Len())
	}
	return nil
}

// summary renders the per-unit outcome table printed after a run.
func summary(report *pipeline.Report) string {
	var b strings.Builder
	for _, name := range report.Names() {
		res, _ := report.Result(name)
		fmt.Fprintf(&b, "%-24s %s\n", name, res)
	}
	return b.String()
}
