package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"golang.org/x/term"

	weaver "github.com/weaverhttp/weaver"
	"github.com/weaverhttp/weaver/config"
	"github.com/weaverhttp/weaver/fiber"
	"github.com/weaverhttp/weaver/weaverlog"
)

// rootCommand builds the weaver CLI's cobra command tree: a single `run`
// subcommand, mirroring the teacher's `cmd/caddy` entry point without
// any of its reload/adapter machinery, which is out of scope here.
func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "weaver",
		Short: "Run a weaver HTTP server from a config file",
		Long: `weaver is a thin CLI around the weaver HTTP server framework.

It loads a ServerConfig document (TOML, YAML, or JSON) and serves it in
the foreground until interrupted. Embedding weaver directly into your
own program, rather than running this CLI, is the primary intended use;
this command exists for quick standalone use and smoke testing.`,
	}

	root.AddCommand(runCommand())
	return root
}

func runCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the server in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "weaver.toml", "path to the server config document")
	return cmd
}

func runServer(configPath string) error {
	logger := buildLogger()
	defer func() { _ = logger.Sync() }()

	tuneRuntime(logger)

	doc, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	srv := weaver.New(doc.ServerConfig())
	logger.Info("starting server", zap.String("name", srv.Name()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fb := srv.IntoFiber(ctx)
	fb.Start(fiber.NewGoScheduler())

	if err := fb.Join(); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// tuneRuntime applies container-aware GOMAXPROCS/memory-limit hygiene at
// startup, the way the teacher's own main() does before it does anything
// else.
func tuneRuntime(logger *zap.Logger) {
	undo, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof))
	defer undo()
	if err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}

	_, _ = memlimit.SetGoMemLimitWithOpts(
		memlimit.WithLogger(
			slog.New(zapslog.NewHandler(logger.Core())),
		),
		memlimit.WithProvider(
			memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			),
		),
	)
}

// buildLogger picks a console encoder for an interactive terminal and a
// JSON encoder otherwise, matching common CLI ergonomics for this stack.
func buildLogger() *zap.Logger {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		cfg := zap.NewDevelopmentConfig()
		l, err := cfg.Build()
		if err == nil {
			return l
		}
	}
	return weaverlog.Default()
}
