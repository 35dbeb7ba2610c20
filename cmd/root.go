package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/StinkyLord/cbuild-idkit/internal/compiler"
	"github.com/StinkyLord/cbuild-idkit/internal/config"
	"github.com/StinkyLord/cbuild-idkit/internal/contextname"
	"github.com/StinkyLord/cbuild-idkit/internal/grammar"
	"github.com/StinkyLord/cbuild-idkit/internal/identifier"
	"github.com/StinkyLord/cbuild-idkit/internal/logging"
	"github.com/StinkyLord/cbuild-idkit/internal/output"
	"github.com/StinkyLord/cbuild-idkit/internal/version"
)

const toolVersion = "1.0.0"

var (
	flagConfig  string
	flagFormat  string
	flagOutput  string
	flagVerbose bool
)

// Settled in PersistentPreRunE.
var (
	cfg    = config.Defaults()
	logger = logging.New(os.Stderr, false)
)

// The grammar is built once and shared by every parser.
var (
	grammarTable = grammar.Default()
	codec        = identifier.New(grammarTable)
	compilers    = compiler.New(grammarTable, version.Semantic{})
	contexts     = contextname.New(grammarTable)
)

var rootCmd = &cobra.Command{
	Use:     "cbuild-idkit",
	Short:   "csolution identifier toolkit",
	Version: toolVersion,
	Long: `cbuild-idkit builds and takes apart the compact identifiers used in
csolution build configurations:

  • component ids   — Vendor::Class&Bundle:Group:Sub&Variant@Version
  • pack ids        — Vendor::Name@Version
  • compiler ids    — Name, Name@Version, Name@>=Version
  • context entries — Project.BuildType+TargetType`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"config file (default: ./.cbuild-idkit.yaml or ~/.config/cbuild-idkit/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "json", "Output format: json, yaml")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "-", "Output file path (use '-' for stdout)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSettings(cmd *cobra.Command, args []string) error {
	v := viper.New()
	for _, name := range []string{"format", "verbose"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("cannot bind flag --%s: %w", name, err)
		}
	}

	loaded, used, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	if used != "" {
		logger.Debug("loaded configuration", "file", used)
	}
	return nil
}

// emit writes v in the configured format to the --output file, or to the
// command's stdout for "-".
func emit(cmd *cobra.Command, v any) error {
	if err := output.WriteFile(flagOutput, cmd.OutOrStdout(), v, cfg.Format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if flagOutput != "-" && flagOutput != "" {
		logger.Info("output written", "file", flagOutput)
	}
	return nil
}
