// Package commands implements the CLI commands for klse.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/klse/internal/app"
	"go.trai.ch/klse/internal/build"
	"go.trai.ch/klse/internal/core/domain"
)

// CLI represents the command line interface for klse.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Task(ctx context.Context, sequence []string, opts app.GlobalOptions) error
	SmartCompile(ctx context.Context, req domain.CompileRequest, opts app.GlobalOptions) error
	CompileFolder(ctx context.Context, req domain.FolderRequest, opts app.CompileFolderOptions) error
	BuildDir(ctx context.Context, dir string, opts app.GlobalOptions) error
}

const (
	flagTaskPath  = "task-path"
	flagRecursive = "recursive"
	flagJSON      = "json"
	flagTimings   = "timings"
	flagShell     = "shell"
)

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "klse",
		Short: "A build-task orchestrator for C and C++ projects",
		Long: `klse runs the tasks described in a project's klse.json and compiles
C and C++ sources incrementally, recompiling a file only when it changed
or when the flags it is compiled with changed.

Use "klse help <command>" to get more detailed help for a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP(flagTaskPath, "t", domain.DefaultTaskPath, "Path to the directory containing the klse.json file")
	flags.BoolP(flagRecursive, "r", false, "Recursively executes said command")
	flags.Bool(flagJSON, false, "Write log lines as JSON")
	flags.Bool(flagTimings, false, "Report how long each step took")
	flags.String(flagShell, "", "Shell used for task commands: system or builtin (overrides klse.yaml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTaskCmd())
	rootCmd.AddCommand(c.newSmartCompileCmd())
	rootCmd.AddCommand(c.newCompileFolderCmd())
	rootCmd.AddCommand(c.newBuildDirCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func globalOptions(cmd *cobra.Command) app.GlobalOptions {
	taskPath, _ := cmd.Flags().GetString(flagTaskPath)
	jsonOutput, _ := cmd.Flags().GetBool(flagJSON)
	timings, _ := cmd.Flags().GetBool(flagTimings)
	shell, _ := cmd.Flags().GetString(flagShell)

	return app.GlobalOptions{
		TaskPath: taskPath,
		JSON:     jsonOutput,
		Timings:  timings,
		Shell:    shell,
	}
}
