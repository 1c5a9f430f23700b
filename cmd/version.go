package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd reports the build identity of the binary.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and runtime details.",
	Long: `Print the release version, commit, build date, and Go runtime of this
ciphermetrics binary.

The version fields are stamped at build time via -ldflags; a source build
reports "dev". Include this output when filing issues so results can be
matched to the exact build.

Examples:
  ciphermetrics version`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("ciphermetrics %s (commit %s, built %s, %s %s/%s)\n",
			version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
