package main

import (
	"context"
	"fmt"

	"donatehub/internal/db"
	"donatehub/internal/seed"
	"donatehub/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Apply migrations and seed categories and counties",
	Action: func(c *cli.Context) error {
		cfg, err := loadDatabaseConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		logrus.Info("Seeding categories...")
		if err := seed.SeedCategories(ctx, store.NewCategoryRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		logrus.Info("Seeding counties...")
		if err := seed.SeedCounties(ctx, store.NewCountyRepository(pool)); err != nil {
			return fmt.Errorf("failed to seed counties: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
