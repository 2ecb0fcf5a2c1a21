// Package cmd contains all the commands included in the docconvert binary.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/docconvert/internal/cli"
	"github.com/dmitrijs2005/docconvert/internal/config"
	"github.com/dmitrijs2005/docconvert/internal/logging"
)

// Env carries what the root command prepares for its children: the merged
// configuration and the logger. It is populated before any RunE runs.
type Env struct {
	Config *config.Config
	Logger logging.Logger

	flags    *config.Flags
	closeLog func() error
}

// NewRootCommand returns the root command, which starts the interactive REPL,
// and the Env shared with the subcommands. Configuration comes from defaults,
// an optional config file, DOCCONVERT_* environment variables and flags (in
// that order).
func NewRootCommand() (*cobra.Command, *Env) {
	env := &Env{}

	cmd := &cobra.Command{
		Use:   "docconvert",
		Short: "Convert documents to and from base64",
		Long: `Convert Word, PDF and plain-text documents to base64 text and back.

Run without a subcommand for the interactive session, or use encode, decode
and inspect for one-shot conversions.`,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: env.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []cli.Option
			if in := cmd.InOrStdin(); in != os.Stdin {
				opts = append(opts, cli.WithInput(in))
			}
			if out := cmd.OutOrStdout(); out != os.Stdout {
				opts = append(opts, cli.WithOutput(out))
			}

			app, err := cli.NewApp(env.Config, env.Logger, opts...)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	env.flags = config.RegisterFlags(cmd.PersistentFlags())
	return cmd, env
}

func (e *Env) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(e.flags)
	if err != nil {
		return err
	}

	opts := cfg.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	e.Config = cfg
	e.Logger = logger.With("command", cmd.Name())
	e.closeLog = closeLog

	e.Logger.Debug(context.Background(), "configuration loaded",
		"output_dir", cfg.OutputDir, "log_backend", cfg.LogBackend, "preview_limit", cfg.PreviewLimit)
	return nil
}

// Close releases the log file, if any. Safe to call more than once.
func (e *Env) Close() error {
	if e.closeLog == nil {
		return nil
	}
	err := e.closeLog()
	e.closeLog = nil
	return err
}
