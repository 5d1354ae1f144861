package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/alexshd/cert/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json" | "yaml" | "toml"
	Precision int
	Locale    string
	Relative  bool

	// Resolved in PersistentPreRunE from the environment and the flags above.
	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the cert CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cert",
		Short: "cert - arithmetic on uncertain values",
		Long: "Propagate measurement uncertainty through arithmetic.\n\n" +
			"Values are written as \"10±1\", \"10+-1\" or \"20±5%\"; a bare number is exact.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags; unset flags fall back to CERT_* environment variables
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log evaluation steps to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml|toml)")
	cmd.PersistentFlags().IntVarP(&opts.Precision, "precision", "p", 2, "digits after the decimal point in text output (-1 for shortest)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "BCP 47 language tag for number formatting in text output")
	cmd.PersistentFlags().BoolVarP(&opts.Relative, "relative", "r", false, "report results in relative form")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewCombineCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// resolve merges the environment configuration with explicitly set flags.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid environment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = o.Format
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = o.Precision
	}
	if flags.Changed("locale") {
		cfg.Output.Locale = o.Locale
	}
	if flags.Changed("relative") {
		cfg.Output.Relative = o.Relative
	}
	if o.Verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid options", err)
	}

	level, _ := config.ParseLevel(cfg.Logging.Level)
	o.Config = cfg
	o.Logger = newLogger(cmd.ErrOrStderr(), level)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    w != io.Writer(os.Stderr) || os.Getenv("NO_COLOR") != "",
	}))
}

// formatter builds the output formatter for a command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:   o.Config.Output.Format,
		Writer:   cmd.OutOrStdout(),
		Text:     o.Config.FormatConfig(),
		Locale:   o.Config.Output.Locale,
		Relative: o.Config.Output.Relative,
	}
}

// normalizeArgs folds compatibility characters such as full-width digits so
// that "１０±１" reads as "10±1".
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = norm.NFKC.String(arg)
	}
	return out
}
