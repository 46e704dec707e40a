package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zyneaa/rei/internal/config"
)

var rootCmd = &cobra.Command{
	Use:     "rei [file]",
	Short:   "Rei language interpreter",
	Long:    `rei runs Rei source files through a tree-walking scanner/parser/resolver/evaluator pipeline.`,
	Version: config.Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runFile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("rei version {{.Version}}\n")
}
