package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/cbuild-idkit/internal/model"
	"github.com/StinkyLord/cbuild-idkit/internal/projutil"
)

var flagOutputTypes []string

var contextCmd = &cobra.Command{
	Use:   "context <entry>...",
	Short: "Split context entries into project, build type and target type",
	Long: `Split context entries of the form <project>[.<build-type>][+<target-type>].
Build type and target type may come in either order.

Examples:
  cbuild-idkit context App.Debug+Board
  cbuild-idkit context App+Board.Debug --output-type elf --output-type hex`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, parseContexts(args, flagOutputTypes))
	},
}

func init() {
	contextCmd.Flags().StringSliceVar(&flagOutputTypes, "output-type", nil,
		"Requested outputs: bin, elf, hex, lib, cmse-lib")
	rootCmd.AddCommand(contextCmd)
}

type contextResult struct {
	model.ContextName `yaml:",inline"`

	Entry     string                `json:"entry" yaml:"entry"`
	Canonical string                `json:"canonical" yaml:"canonical"`
	Outputs   *projutil.OutputTypes `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

func parseContexts(entries, outputTypes []string) []contextResult {
	var outputs *projutil.OutputTypes
	if len(outputTypes) > 0 {
		outputs = &projutil.OutputTypes{}
		var unknown []string
		for _, t := range outputTypes {
			if !outputs.SetOutputType(t) {
				unknown = projutil.AppendUnique(unknown, t)
			}
		}
		if len(unknown) > 0 {
			logger.Warn("ignoring unknown output types", "types", unknown)
		}
	}

	results := make([]contextResult, 0, len(entries))
	for _, e := range entries {
		c := contexts.Parse(e)
		results = append(results, contextResult{
			Entry:       e,
			Canonical:   contexts.Format(c),
			ContextName: c,
			Outputs:     outputs,
		})
	}
	return results
}
