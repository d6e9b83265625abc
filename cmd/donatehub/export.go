package main

import (
	"context"
	"fmt"
	"time"

	"donatehub/internal/db"
	"donatehub/internal/export"
	"donatehub/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Archive one UTC day of volunteering resources to S3 as JSON Lines",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "day",
			Aliases: []string{"d"},
			Usage:   "Day to export as YYYY-MM-DD, defaults to yesterday",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadDatabaseConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.ExportBucket == "" {
			return fmt.Errorf("set EXPORT_BUCKET")
		}

		day := time.Now().UTC().AddDate(0, 0, -1)
		if raw := c.String("day"); raw != "" {
			day, err = time.Parse(time.DateOnly, raw)
			if err != nil {
				return fmt.Errorf("parse --day: %w", err)
			}
		}

		ctx := context.Background()

		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		exporter := export.New(
			s3.NewFromConfig(awsConfig),
			store.NewVolunteeringRepository(pool),
			cfg.ExportBucket,
			cfg.ExportPrefix,
		)

		result, err := exporter.ExportDay(ctx, day)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"bucket": cfg.ExportBucket,
			"key":    result.Key,
			"count":  result.Count,
		}).Info("export complete")

		return nil
	},
}
