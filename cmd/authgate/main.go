package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/clearview/authgate/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting authgate",
		"addr", cfg.HTTP.Addr,
		"token_source", string(cfg.Auth.TokenSource),
		"is_dev", cfg.IsDev)

	resolver, err := bootstrap.BuildResolver(bootstrap.ResolverConfig{
		Auth:   cfg.Auth,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	tokens, err := bootstrap.BuildAuthorityClient(cfg.Authority, logger)
	if err != nil {
		return err
	}

	serveCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bootstrap.RunServerWithShutdown(serveCtx, &bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Resolver: resolver,
		Tokens:   tokens,
		Logger:   logger,
	})
}
