// Command provision-admin creates an admin account directly in MongoDB.
//
//	ADMIN_PASSWORD=... provision-admin -name "Cafe Admin" -email admin@example.com
//
// The password is read from the environment so it stays out of shell history.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Shubham-3256/millets-cafe/internal/core/service"
	"github.com/Shubham-3256/millets-cafe/internal/infrastructure/config"
	mongodb "github.com/Shubham-3256/millets-cafe/internal/infrastructure/db/mongo"
	"github.com/Shubham-3256/millets-cafe/pkg/logger"
)

func main() {
	name := flag.String("name", "Admin", "display name of the admin account")
	email := flag.String("email", "", "email address used to log in")
	flag.Parse()

	if err := run(context.Background(), *name, *email, os.Getenv("ADMIN_PASSWORD")); err != nil {
		fmt.Fprintln(os.Stderr, "provision-admin:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, name, email, password string) error {
	if email == "" {
		return fmt.Errorf("-email is required")
	}
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is not set")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "provision-admin"})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(mongodb.NewAuthRepository(db), tokens, cfg.BcryptCost, log)

	user, err := auth.ProvisionAdmin(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("provision admin: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("admin account ready")
	return nil
}
