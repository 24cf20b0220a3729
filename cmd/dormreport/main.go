// @title			DormReport API
// @version		1.0
// @description	Dormitory facility report tracker with a role-scoped lifecycle and admin statistics.
// @BasePath		/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mtlprog/dormreport/internal/config"
	"github.com/mtlprog/dormreport/internal/logger"
	"github.com/mtlprog/dormreport/internal/notify"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Optional YAML file with flag values",
			EnvVars: []string{"DORMREPORT_CONFIG"},
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   config.DefaultLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "database-url",
			Aliases: []string{"d"},
			Value:   config.DefaultDatabaseURL,
			Usage:   "PostgreSQL URL of the primary store",
			EnvVars: []string{"DATABASE_URL"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "replica-database-url",
			Usage:   "PostgreSQL URL of the secondary copy used by eventual/weak reads",
			EnvVars: []string{"REPLICA_DATABASE_URL"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "jwt-secret",
			Usage:   "HMAC secret for identity tokens",
			EnvVars: []string{"JWT_SECRET"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "Redis URL; lifecycle events are appended to a stream when set",
			EnvVars: []string{"REDIS_URL"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "redis-stream",
			Value:   notify.DefaultStream,
			Usage:   "Redis stream name for lifecycle events",
			EnvVars: []string{"REDIS_STREAM"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "amqp-url",
			Usage:   "AMQP URL; lifecycle events are published to a topic exchange when set",
			EnvVars: []string{"AMQP_URL"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "amqp-exchange",
			Value:   notify.DefaultExchange,
			Usage:   "AMQP topic exchange for lifecycle events",
			EnvVars: []string{"AMQP_EXCHANGE"},
		}),
	}

	app := &cli.App{
		Name:  "dormreport",
		Usage: "Dormitory facility report tracker",
		Flags: flags,
		Before: func(c *cli.Context) error {
			if err := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))(c); err != nil {
				return fmt.Errorf("load config file: %w", err)
			}
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			if c.String("database-url") == "" {
				return errors.New("database-url is required")
			}
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			issueTokenCommand(),
			createUserCommand(),
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
