package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/cbuild-idkit/internal/compiler"
	"github.com/StinkyLord/cbuild-idkit/internal/projutil"
	"github.com/StinkyLord/cbuild-idkit/internal/version"
)

var compilerCmd = &cobra.Command{
	Use:   "compiler",
	Short: "Work with toolchain compiler ids",
	Long: `Work with compiler ids of the form <name>[@[>=]<version>]:

  GCC          any GCC version
  GCC@10.3.1   exactly 10.3.1
  GCC@>=10.3.1 10.3.1 or later`,
}

var compilerExpandCmd = &cobra.Command{
	Use:   "expand <compiler-id>...",
	Short: "Print name, minimum and maximum version of compiler ids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs := make([]compiler.Spec, 0, len(args))
		for _, id := range args {
			specs = append(specs, compilers.Expand(id))
		}
		return emit(cmd, specs)
	},
}

var compilerCompatibleCmd = &cobra.Command{
	Use:   "compatible <compiler-id> <compiler-id>",
	Short: "Check whether two compiler ids can both be satisfied",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, compatibility{
			First:      args[0],
			Second:     args[1],
			Compatible: compilers.Compatible(args[0], args[1]),
		})
	},
}

var compilerIntersectCmd = &cobra.Command{
	Use:   "intersect <compiler-id> <compiler-id>",
	Short: "Print the compiler id satisfying both inputs",
	Long: `Print the compiler id satisfying both inputs.

The outcome is "value" with the resulting id, "empty" when the ids are
incompatible or both empty, or "unrepresentable" when the overlap is a range
with distinct lower and upper bounds.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, intersect(args[0], args[1]))
	},
}

var compilerAffixesCmd = &cobra.Command{
	Use:   "affixes <compiler-id>",
	Short: "Print the toolchain specific output file affixes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, projutil.OutputAffixes(args[0]))
	},
}

func init() {
	compilerCmd.AddCommand(compilerExpandCmd, compilerCompatibleCmd, compilerIntersectCmd, compilerAffixesCmd)
	rootCmd.AddCommand(compilerCmd)
}

type compatibility struct {
	First      string `json:"first" yaml:"first"`
	Second     string `json:"second" yaml:"second"`
	Compatible bool   `json:"compatible" yaml:"compatible"`
}

func intersect(first, second string) compiler.Intersection {
	res := compilers.Intersect(first, second)
	switch res.Outcome {
	case compiler.Unrepresentable:
		logger.Warn("compiler ranges overlap but the overlap has no compiler id", "first", first, "second", second)
		a, b := compilers.Expand(first), compilers.Expand(second)
		if version.Equal(a.Min, b.Max) || version.Equal(b.Min, a.Max) {
			logger.Warn("both bounds name the same version spelt differently, write it the same way in both ids")
		}
	case compiler.Empty:
		logger.Debug("no compiler intersection", "first", first, "second", second)
	}
	return res
}
