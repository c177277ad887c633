package main

import (
	"context"
	"errors"
	"os"

	"rescue-animals/internal/adapters/auth/local"
	mem "rescue-animals/internal/adapters/storage/memory"
	"rescue-animals/internal/domain/animals"
	"rescue-animals/internal/menu"
	"rescue-animals/internal/platform/config"
	"rescue-animals/internal/platform/logger"
	"rescue-animals/internal/platform/metrics"
	"rescue-animals/internal/ports/auth"
	"rescue-animals/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("exiting", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	m := metrics.New()

	repo := mem.NewAnimalRepo()
	if cfg.SeedDemoData {
		n, err := seed.Load(ctx, repo)
		if err != nil {
			return err
		}
		m.SetRegistered(n)
		log.Info("seed data loaded", map[string]any{"animals": n})
	}

	svc := animals.NewService(repo,
		animals.WithLogger(log.With(map[string]any{"component": "animals"})),
		animals.WithMetrics(m),
		animals.WithVetClearanceRequired(cfg.RequireVetClearance),
	)

	users := local.NewStore()
	if err := users.AddUser("admin", cfg.AdminPassword, auth.RoleAdmin); err != nil {
		return err
	}
	if err := users.AddUser("customer", cfg.CustomerPassword, auth.RoleCustomer); err != nil {
		return err
	}

	app := menu.New(menu.Options{
		Service:          svc,
		Authenticator:    users,
		Logger:           log.With(map[string]any{"component": "menu"}),
		Metrics:          m,
		In:               os.Stdin,
		Out:              os.Stdout,
		MaxLoginAttempts: cfg.MaxLoginAttempts,
	})

	err := app.Run(ctx)
	if errors.Is(err, menu.ErrTooManyAttempts) {
		// ya se informó en pantalla
		return nil
	}
	return err
}
