package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alatiera/buildfarm/internal/env"
)

const defaultManifest = "buildfarm.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(defaultManifest); err == nil {
		return fmt.Errorf("%s already exists", defaultManifest)
	}
	workDir, err := env.WorkDir()
	if err != nil {
		return err
	}
	manifest := fmt.Sprintf(`source_root: %s
install_prefix: %s
units:
  - name: example
    repo: https://github.com/example/example
    branch: main
    build: autotools
`,
		filepath.Join(workDir, "src"),
		filepath.Join(workDir, "prefix"))

	if err := os.WriteFile(defaultManifest, []byte(manifest), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", defaultManifest)
	return nil
}
