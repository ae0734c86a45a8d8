package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/klse/internal/core/domain"
)

func (c *CLI) newBuildDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-dir [dir]",
		Short: "Prepare bin, obj and libs in a dist directory",
		Long: `Prepares bin, obj and libs in a dist directory.

You can specify a directory by passing it as an optional argument, else the
current working directory is used. Existing directories are left as they are.`,
		Example: `  klse build-dir
  klse build-dir /path/to/dir`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := domain.DefaultTaskPath
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.BuildDir(cmd.Context(), dir, globalOptions(cmd))
		},
	}
}
