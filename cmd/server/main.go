// Package main is the entry point for the hello service HTTP server.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/logging"
	"github.com/sebasr/hello-service/internal/server"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, short)
}

func main() {
	app := &cli.Command{
		Name:    "hello-service",
		Usage:   "Greet callers by name over HTTP",
		Version: build(),
		Flags:   serverFlags(),
		Action:  run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("hello-service exited")
	}
}

func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "interface to bind (overrides HOST)",
		},
		&cli.StringFlag{
			Name:  "port",
			Usage: "port to listen on (overrides PORT)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: trace, debug, info, warn, error (overrides LOG_LEVEL)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "log format: json or console (overrides LOG_FORMAT)",
		},
	}
}

// applyFlags overrides cfg with flags set on the command line and revalidates it.
func applyFlags(cfg *config.Config, c *cli.Command) error {
	if c.IsSet("host") {
		cfg.Server.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.String("port")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	return cfg.Validate()
}

func run(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlags(cfg, c); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	log.Logger = logger

	router := server.New(&server.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Version: version,
	})
	srv := server.NewHTTPServer(&cfg.Server, router)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", ln.Addr().String()).Str("version", build()).Msg("starting server")

	if err := server.Serve(ctx, srv, ln, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
