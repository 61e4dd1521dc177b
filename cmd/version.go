package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocfs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocfs v%s\n", version.Version)
		fmt.Println("Cold-Formed Steel Section Calculator")
		fmt.Printf("Based on %s\n", version.Standard)
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
