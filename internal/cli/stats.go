package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/cert"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	StandardError bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Estimate a value from repeated measurements",
		Long: `Read whitespace-separated numbers from a file, or stdin when no file
or "-" is given, and report the sample mean with the sample standard
deviation. With --sem the uncertainty is the standard error of the mean.`,
		Example: "  cert stats readings.txt\n  echo 2 4 4 4 5 5 7 9 | cert stats --sem",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.StandardError, "sem", false, "report the standard error of the mean")

	return cmd
}

func runStats(rootOpts *RootOptions, opts *StatsOptions, args []string, cmd *cobra.Command) error {
	in := cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open samples", err)
		}
		defer f.Close()
		in, source = f, args[0]
	}

	xs, err := readSamples(in)
	if err != nil {
		return inputError(err)
	}
	rootOpts.Logger.Debug("read samples", "source", source, "count", len(xs))

	estimate := cert.FromSamples
	if opts.StandardError {
		estimate = cert.StandardErrorOf
	}
	v, err := estimate(xs)
	if err != nil {
		if errors.Is(err, cert.ErrEmptySample) {
			return WrapExitError(ExitFailure, "no samples in "+source, err)
		}
		return WrapExitError(ExitFailure, "failed to estimate", err)
	}

	return rootOpts.formatter(cmd).Value(v)
}

// readSamples parses whitespace-separated floats.
func readSamples(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var xs []float64
	for sc.Scan() {
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %q", cert.ErrSyntax, len(xs)+1, sc.Text())
		}
		xs = append(xs, x)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return xs, nil
}
