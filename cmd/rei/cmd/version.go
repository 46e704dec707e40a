package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyneaa/rei/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("rei version %s\n", config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
