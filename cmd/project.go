package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/cbuild-idkit/internal/projutil"
)

var categoryCmd = &cobra.Command{
	Use:   "category <file>...",
	Short: "Print the file category derived from each file extension",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, categorize(args))
	},
}

var compilerRootCmd = &cobra.Command{
	Use:   "compiler-root",
	Short: "Print the toolchain configuration directory",
	Long: `Print the toolchain configuration directory. It is taken from, in order:
the compiler_root setting, the CMSIS_COMPILER_ROOT environment variable and
the etc directory next to the executable's directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := projutil.NormalizeRoot(cfg.CompilerRoot)
		if root == "" {
			root = projutil.CompilerRoot(os.LookupEnv, os.Executable)
		}
		if root == "" {
			logger.Warn("no compiler root found", "env", projutil.CompilerRootEnv)
		}
		return emit(cmd, compilerRoot{CompilerRoot: root})
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <shell-command>",
	Short: "Run a generator command and report its output and exit code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		logger.Debug("running command", "cmd", args[0])
		res, err := projutil.ExecCommand(ctx, args[0])
		if err != nil {
			return err
		}
		return emit(cmd, execResult{Output: res.Output, ExitCode: res.ExitCode})
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd, compilerRootCmd, execCmd)
}

type fileCategory struct {
	File     string `json:"file" yaml:"file"`
	Category string `json:"category" yaml:"category"`
}

func categorize(files []string) []fileCategory {
	out := make([]fileCategory, 0, len(files))
	for _, f := range files {
		out = append(out, fileCategory{File: f, Category: projutil.Category(f)})
	}
	return out
}

type compilerRoot struct {
	CompilerRoot string `json:"compilerRoot" yaml:"compilerRoot"`
}

type execResult struct {
	Output   string `json:"output" yaml:"output"`
	ExitCode int    `json:"exitCode" yaml:"exitCode"`
}
