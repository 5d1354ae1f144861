package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/cert"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <value>",
		Short:   "Show a value in absolute and relative form",
		Example: "  cert convert 10±1\n  cert convert 250±2%",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runConvert(rootOpts *RootOptions, arg string, cmd *cobra.Command) error {
	v, err := cert.ParseAny(normalizeArgs([]string{arg})[0])
	if err != nil {
		return inputError(err)
	}
	rootOpts.Logger.Debug("parsed", "input", arg, "value", v)

	return rootOpts.formatter(cmd).Results(
		NewResult("absolute", v.Absolute()),
		NewResult("relative", v.Relative()),
	)
}
