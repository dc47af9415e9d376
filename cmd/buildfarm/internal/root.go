package internal

import (
	"os"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "buildfarm",
	Short: "buildfarm keeps a build machine's source dependencies built and installed",
	Long: `buildfarm reads a manifest of source dependencies, keeps their checkouts
up to date, and builds and installs each one into a shared prefix.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable verbose output")
	cobra.OnInitialize(func() {
		if rootVerbose {
			log.SetOutputLevel(log.Ldebug)
		}
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
