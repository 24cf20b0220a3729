package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mtlprog/dormreport/internal/database"
	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/middleware"
	"github.com/mtlprog/dormreport/internal/repository"
	"github.com/urfave/cli/v2"
)

func issueTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "issue-token",
		Usage: "Print a signed identity token for an existing user",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "User email"},
			&cli.StringFlag{Name: "user-id", Usage: "User ID"},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: middleware.DefaultTokenTTL,
				Usage: "Token lifetime",
			},
		},
		Action: runIssueToken,
	}
}

func createUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "Create a resident, admin or technician",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "Full name"},
			&cli.StringFlag{Name: "email", Required: true, Usage: "Email address"},
			&cli.StringFlag{Name: "role", Value: string(domain.RoleUser), Usage: "USER, ADMIN or TEKNISI"},
			&cli.StringFlag{Name: "room", Usage: "Room number (residents)"},
		},
		Action: runCreateUser,
	}
}

func runIssueToken(c *cli.Context) error {
	ctx := c.Context

	secret := c.String("jwt-secret")
	if secret == "" {
		return errors.New("jwt-secret is required")
	}

	db, err := database.New(ctx, "primary", c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	users := repository.NewUserRepository(database.NewRouter(db.Pool(), nil))

	var identity *domain.Identity
	switch {
	case c.String("user-id") != "":
		identity, err = users.GetByID(ctx, c.String("user-id"))
	case c.String("email") != "":
		identity, err = users.GetByEmail(ctx, c.String("email"))
	default:
		return errors.New("either --email or --user-id is required")
	}
	if err != nil {
		return err
	}

	token, err := middleware.IssueToken(secret, identity, c.Duration("ttl"))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, token)
	return nil
}

func runCreateUser(c *cli.Context) error {
	ctx := c.Context

	role := domain.Role(strings.ToUpper(c.String("role")))
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", c.String("role"))
	}

	identity := &domain.Identity{
		FullName: strings.TrimSpace(c.String("name")),
		Email:    strings.TrimSpace(c.String("email")),
		Role:     role,
	}
	if room := strings.TrimSpace(c.String("room")); room != "" {
		identity.RoomNumber = &room
	}

	db, err := database.New(ctx, "primary", c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	users := repository.NewUserRepository(database.NewRouter(db.Pool(), nil))

	created, err := users.Create(ctx, identity)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, created.ID)
	return nil
}
