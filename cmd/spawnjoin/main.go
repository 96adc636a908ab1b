package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ddromanidis/spawnjoin"
)

var messages = []string{"Thread 1", "Thread 2"}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "spawnjoin",
		Short:         "Spawn two workers, join them and report how they started",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), logger)
		},
	}
}

// run launches one worker per message and prints the report. Launch and
// write failures are logged only; the command always exits 0 once it runs.
func run(ctx context.Context, out io.Writer, logger *slog.Logger, opts ...spawnjoin.Option) error {
	opts = append([]spawnjoin.Option{
		spawnjoin.WithLogger(logger),
		spawnjoin.WithChain(spawnjoin.NewChain().Recover().Logged().WithLogger(logger)),
	}, opts...)
	l := spawnjoin.NewLauncher(out, opts...)

	payloads := make([]spawnjoin.Payload, 0, len(messages))
	for _, m := range messages {
		payloads = append(payloads, spawnjoin.NewPayload(m))
	}

	report, err := l.Launch(ctx, payloads...)
	if err != nil {
		// Spawn failures are part of the report, not of the exit status.
		logger.Error("launch finished with errors", "error", err)
	}
	if _, werr := report.WriteTo(out); werr != nil {
		logger.Error("write report", "error", werr)
	}
	if !report.OK() {
		logger.Warn("not every worker was started", "outcomes", len(report))
	}
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := newRootCmd(logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("spawnjoin failed", "error", err)
		os.Exit(1)
	}
}
