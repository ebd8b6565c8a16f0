package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/macrolens/fdcresolve/config"
	"github.com/macrolens/fdcresolve/internal/delivery/batchio"
	"github.com/macrolens/fdcresolve/internal/infrastructure/parser"
	"github.com/macrolens/fdcresolve/internal/usecase"
)

// newRootCmd creates the root command. fdcresolve is a single-shot batch
// transform: one JSON array of product names in on stdin, one index-aligned
// JSON array of foundation food match lists out on stdout.
func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "fdcresolve",
		Short:   "Batch foundation food lookup via the ingredient parser service",
		Version: version,
		Long: `fdcresolve reads a JSON array of product names from stdin and writes a JSON
array of foundation food match lists to stdout, one list per name, in input
order. A name whose lookup fails contributes an empty list; the batch always
completes. Only undecodable input fails the command.`,
		Example:       `  echo '["flour", "butter", "chicken"]' | fdcresolve`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, debug)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

// runBatch wires config, parser client, and resolver, then runs one batch
// over the command's stdin/stdout.
func runBatch(cmd *cobra.Command, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level, debug)

	logger.Debug().
		Str("base_url", cfg.Parser.BaseURL).
		Dur("timeout", cfg.Parser.Timeout).
		Float64("rate_limit", cfg.Parser.RateLimit).
		Msg("parser client configured")

	client := parser.NewClient(parser.ClientConfig{
		BaseURL:   cfg.Parser.BaseURL,
		APIKey:    cfg.Parser.APIKey,
		Timeout:   cfg.Parser.Timeout,
		RateLimit: cfg.Parser.RateLimit,
		Burst:     cfg.Parser.Burst,
		Logger:    logger,
	})

	resolver := usecase.NewResolverService(client, usecase.ResolverConfig{
		OnLookupError: func(index int, name string, err error) {
			logger.Warn().
				Int("index", index).
				Str("name", name).
				Err(err).
				Msg("lookup failed, emitting empty match list")
		},
	})

	return batchio.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), resolver)
}

// newLogger builds the stderr logger. Stdout is reserved for batch output,
// so all diagnostics go to the error stream.
func newLogger(w io.Writer, level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
