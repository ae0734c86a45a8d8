package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/klse/internal/app"
	"go.trai.ch/klse/internal/core/domain"
	"go.trai.ch/zerr"
)

// compileArgs holds the positional arguments of the compile commands.
type compileArgs struct {
	language  domain.Language
	path      string
	outputDir string
	flags     []string
}

// parseCompileArgs splits args at "--" into <language> <path> [out_dir] and
// the compiler flags.
func parseCompileArgs(cmd *cobra.Command, args []string) (compileArgs, error) {
	positional, flags := args, []string(nil)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional, flags = args[:dash], args[dash:]
	}

	if len(positional) < 2 || len(positional) > 3 {
		err := zerr.New("expected <language> <path> [out_dir] before the compiler flags")
		return compileArgs{}, zerr.With(err, "command", cmd.Name())
	}

	lang, err := domain.ParseLanguage(positional[0])
	if err != nil {
		return compileArgs{}, err
	}

	parsed := compileArgs{
		language:  lang,
		path:      positional[1],
		outputDir: domain.DefaultOutputDir,
		flags:     flags,
	}
	if len(positional) == 3 {
		parsed.outputDir = positional[2]
	}
	return parsed, nil
}

func (c *CLI) newSmartCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smart-compile <language> <file> [out_dir] [-- flags...]",
		Short: "Compile a file if it changed since it was last compiled",
		Long: `Compiles a C or C++ file into out_dir/<name>.o, unless the object there is
already newer than the file and was compiled with the same flags.

The language is either "c" or "c++". The output directory defaults to the
current working directory and is created when it doesn't exist.

Compiler flags are given after "--", otherwise they would be taken for
options of klse itself. The flags each file was compiled with are kept in
klse_CFLAGS.json.cache inside the output directory.`,
		Example: `  klse smart-compile c hello.c
  klse smart-compile c hello.c path/to/dir
  klse smart-compile c++ main.cpp . -- -O3 -Wall`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseCompileArgs(cmd, args)
			if err != nil {
				return err
			}

			return c.app.SmartCompile(cmd.Context(), domain.CompileRequest{
				Language:  parsed.language,
				Source:    parsed.path,
				OutputDir: parsed.outputDir,
				Flags:     parsed.flags,
			}, globalOptions(cmd))
		},
	}
}

func (c *CLI) newCompileFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile-folder <language> <dir> [out_dir] [-- flags...]",
		Short: "Compile the changed files of a folder",
		Long: `Compiles every file of dir the way smart-compile does, putting the objects
in out_dir. The output directory defaults to the current working directory.

With -r/--recursive, subdirectories are compiled too, each into the
subdirectory of the same name in out_dir. Without it they are skipped.

Compilation stops at the first file that fails to compile.

With -w/--watch, klse keeps running after the first pass and compiles the
folder again whenever a file in it changes, until interrupted.`,
		Example: `  klse compile-folder c src
  klse compile-folder c /path/to/dir path/to/dir2
  klse -r compile-folder c src build/obj -- -O3 -Wall
  klse compile-folder c++ src build --watch`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseCompileArgs(cmd, args)
			if err != nil {
				return err
			}
			recursive, _ := cmd.Flags().GetBool(flagRecursive)
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.CompileFolder(cmd.Context(), domain.FolderRequest{
				Language:  parsed.language,
				SourceDir: parsed.path,
				OutputDir: parsed.outputDir,
				Flags:     parsed.flags,
				Recursive: recursive,
			}, app.CompileFolderOptions{
				GlobalOptions: globalOptions(cmd),
				Watch:         watch,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Compile again whenever a file in the folder changes")
	return cmd
}
