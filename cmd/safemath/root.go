package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	safemath "novamath/core/math"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigPath string
	cfg        config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{cfg: defaultConfig()}

	cmd := &cobra.Command{
		Use:   "safemath",
		Short: "Checked fixed-width integer arithmetic",
		Long: `Evaluate checked integer arithmetic from the command line.

Every operation either yields the exact result or fails with an
arithmetic error; values never wrap. Failures are logged with the
position of the failing call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	flags.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "diagnostic log level (debug|info|warn|error)")
	flags.StringVar(&opts.cfg.LogFormat, "log-format", opts.cfg.LogFormat, "diagnostic log format (text|json)")
	flags.BoolVarP(&opts.cfg.Quiet, "quiet", "q", false, "discard math error diagnostics")

	cmd.AddCommand(newEvalCommand())
	cmd.AddCommand(newVectorsCommand())
	cmd.AddCommand(newLimitsCommand())

	return cmd
}

// setup merges the config file under the flags and installs the diagnostic
// reporter.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	fileCfg, err := loadConfig(o.ConfigPath)
	if err != nil {
		return wrapExitError(exitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		o.cfg.LogLevel = fileCfg.LogLevel
	}
	if !flags.Changed("log-format") {
		o.cfg.LogFormat = fileCfg.LogFormat
	}
	if !flags.Changed("quiet") {
		o.cfg.Quiet = fileCfg.Quiet
	}

	logger, err := o.cfg.logger(cmd.ErrOrStderr())
	if err != nil {
		return wrapExitError(exitCommandError, "invalid logging config", err)
	}
	slog.SetDefault(logger)

	if o.cfg.Quiet {
		safemath.SetReporter(safemath.Discard)
	} else {
		safemath.SetReporter(safemath.LogReporter{Logger: logger})
	}
	return nil
}
