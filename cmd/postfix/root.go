package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/karrick/postfix/internal/logger"
)

// Version is the current release.
const Version = "0.1.0"

type rootOptions struct {
	debug     bool
	logFormat string
	logFile   string

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "postfix",
		Short: "Evaluate postfix arithmetic expressions",
		Long: `postfix evaluates arithmetic expressions written in Reverse Polish notation:
whitespace separated integer literals and the binary operators + - * /.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.New(opts.loggerConfig(), cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// stderr does not support fsync on every platform
			_ = opts.log.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write logs to this file, rotated")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newSelftestCmd(opts))

	return rootCmd
}

func (o *rootOptions) loggerConfig() *logger.Config {
	cfg := &logger.Config{
		Level:      "warn",
		Format:     o.logFormat,
		Output:     "stderr",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	if o.debug {
		cfg.Level = "debug"
	}
	if o.logFile != "" {
		cfg.Output = "both"
		cfg.FilePath = o.logFile
	}
	return cfg
}
