package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/dormreport/internal/config"
	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/handler"
	"github.com/mtlprog/dormreport/internal/notify"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
		},
		Action: runServe,
	}
}

// openStores connects the primary and, when configured, the secondary store.
func openStores(c *cli.Context) (*database.DB, *database.DB, error) {
	ctx := c.Context

	primary, err := database.New(ctx, "primary", c.String("database-url"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to primary database: %w", err)
	}

	replicaURL := c.String("replica-database-url")
	if replicaURL == "" {
		return primary, nil, nil
	}

	replica, err := database.New(ctx, "replica", replicaURL)
	if err != nil {
		primary.Close()
		return nil, nil, fmt.Errorf("failed to connect to replica database: %w", err)
	}
	return primary, replica, nil
}

// newNotifier picks the event publisher from the configured broker. Redis wins
// when both are set; with neither, events are only logged.
func newNotifier(c *cli.Context) (*notify.Notifier, error) {
	switch {
	case c.String("redis-url") != "":
		pub, err := notify.NewRedisStreamPublisher(c.Context, c.String("redis-url"), c.String("redis-stream"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		slog.Info("publishing report events", "broker", "redis", "stream", c.String("redis-stream"))
		return notify.New(pub), nil
	case c.String("amqp-url") != "":
		pub, err := notify.NewAMQPPublisher(c.String("amqp-url"), c.String("amqp-exchange"))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to amqp: %w", err)
		}
		slog.Info("publishing report events", "broker", "amqp", "exchange", c.String("amqp-exchange"))
		return notify.New(pub), nil
	default:
		slog.Info("no event broker configured, report events are not published")
		return notify.New(nil), nil
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}
	secret := c.String("jwt-secret")
	if secret == "" {
		return errors.New("jwt-secret is required")
	}

	primary, replica, err := openStores(c)
	if err != nil {
		return err
	}
	defer primary.Close()
	if replica != nil {
		defer replica.Close()
	}

	if err := database.RunMigrations(ctx, primary); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var secondary *pgxpool.Pool
	if replica != nil {
		secondary = replica.Pool()
	}
	router := database.NewRouter(primary.Pool(), secondary)

	notifier, err := newNotifier(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			slog.Error("failed to close notifier", "error", err)
		}
	}()

	h := handler.New(router, secret, notifier)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "secondary", router.HasSecondary())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
