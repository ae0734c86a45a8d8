package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task <task> [child...]",
		Short: "Execute task operations",
		Long: `Execute task operations.

It searches for a file named klse.json in the current directory or in the
directory given with -t/--task-path. If it doesn't find it, it exits with
an error.

The first argument names a task of the "task" object. Each following argument
selects a child from the task's "childs" object. When an argument does not
name a child, the task reached so far is run and the remaining arguments are
ignored.

The command run is the "posix" or "windows" entry matching your system, or
the generic "task" entry when there is none.`,
		Example: `  klse task build
  klse task build release
  klse -t /path/to/dir task build release`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Task(cmd.Context(), args, globalOptions(cmd))
		},
	}
}
