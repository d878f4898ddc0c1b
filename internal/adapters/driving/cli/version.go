package cli

import (
	"github.com/spf13/cobra"
)

// versionCmd prints the build version set by SetVersion. Release builds
// inject it through main.version with -ldflags; local builds report "dev".
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kalk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("kalk version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
