package main

import (
	"fmt"

	"github.com/mtlprog/dormreport/internal/database"
	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply schema migrations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "replica",
				Usage: "Also migrate the secondary store",
			},
		},
		Action: runMigrate,
	}
}

func runMigrate(c *cli.Context) error {
	ctx := c.Context

	primary, replica, err := openStores(c)
	if err != nil {
		return err
	}
	defer primary.Close()
	if replica != nil {
		defer replica.Close()
	}

	stores := []*database.DB{primary}
	if c.Bool("replica") {
		if replica == nil {
			return fmt.Errorf("--replica requires replica-database-url")
		}
		stores = append(stores, replica)
	}

	for _, db := range stores {
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		version, err := database.MigrationStatus(ctx, db)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: schema version %d\n", db.Name(), version)
	}

	return nil
}
