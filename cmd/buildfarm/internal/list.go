package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alatiera/buildfarm/internal/config"
)

var listManifest string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the units declared in the manifest",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listManifest, "manifest", "m", defaultManifest, "Path to the build manifest")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := config.Load(listManifest)
	if err != nil {
		return err
	}
	reg, err := m.Registry()
	if err != nil {
		return err
	}
	for _, unit := range reg.List() {
		fmt.Printf("%-24s %-10s %s@%s\n", unit.Name, unit.Strategy.Name(), unit.Repo, unit.Branch)
	}
	return nil
}
