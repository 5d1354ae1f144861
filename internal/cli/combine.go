package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/cert"
)

// NewCombineCommand creates the combine command.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine <values...>",
		Short: "Combine independent measurements of one quantity",
		Long: `Combine independent measurements with inverse-variance weights.
Exact values take precedence: if any input is exact, the result is the mean
of the exact inputs.`,
		Example: "  cert combine 10±1 12±2 11±5%",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(rootOpts, args, cmd)
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runCombine(rootOpts *RootOptions, args []string, cmd *cobra.Command) error {
	values := make([]cert.Uncertainty[float64], 0, len(args))
	for i, arg := range normalizeArgs(args) {
		v, err := cert.ParseAny(arg)
		if err != nil {
			return inputError(fmt.Errorf("value %d: %w", i+1, err))
		}
		values = append(values, v)
	}

	v, err := cert.Combine(values...)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to combine", err)
	}
	rootOpts.Logger.Debug("combined", "inputs", len(values), "result", v)

	return rootOpts.formatter(cmd).Value(v)
}
