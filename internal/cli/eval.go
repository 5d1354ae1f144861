package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexshd/cert/internal/rpn"
	"github.com/alexshd/cert/internal/sheet"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Sheet string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [--sheet file] tokens...",
		Short: "Evaluate a postfix expression",
		Long: `Evaluate a postfix (RPN) expression over uncertain values.

Operators are + - * x / and ^n for integer powers. The result takes the
representation of the left operand of the last operator. Flags must precede
the expression; use -- before a leading negative literal.`,
		Example: `  cert eval 10±1 5±2 +
  cert eval 20±5% 3 x
  cert eval --sheet pendulum.yaml g l ^2 x 2 /`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.Sheet, "sheet", "s", "", "named measurements (.json, .yaml, .yml or .toml)")

	return cmd
}

func runEval(rootOpts *RootOptions, opts *EvalOptions, args []string, cmd *cobra.Command) error {
	logger := rootOpts.Logger
	evalOpts := []rpn.Option{rpn.WithLogger(logger)}

	if opts.Sheet != "" {
		s, err := sheet.Load(opts.Sheet)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load sheet", err)
		}
		logger.Debug("loaded sheet", "path", opts.Sheet, "names", s.Names())
		evalOpts = append(evalOpts, rpn.WithNames(s))
	}
	if rootOpts.Config.Output.Relative {
		evalOpts = append(evalOpts, rpn.WithRelative())
	}

	v, err := rpn.New(evalOpts...).Evaluate(normalizeArgs(args))
	if err != nil {
		return inputError(err)
	}
	return rootOpts.formatter(cmd).Value(v)
}
