package seed

import (
	"context"
	"fmt"

	"donatehub/pkg/types"

	"github.com/sirupsen/logrus"
)

type countyStore interface {
	AllCounties(ctx context.Context) ([]types.County, error)
	UpsertCounty(ctx context.Context, county *types.County) error
	DeleteCounty(ctx context.Context, id string) error
}

// Counties offered in the coverage multi-select, keyed by TERYT code.
var Counties = []types.County{
	{ID: "1465", Label: "Warszawa", DisplayOrder: 1},
	{ID: "1261", Label: "Kraków", DisplayOrder: 2},
	{ID: "1061", Label: "Łódź", DisplayOrder: 3},
	{ID: "0264", Label: "Wrocław", DisplayOrder: 4},
	{ID: "3064", Label: "Poznań", DisplayOrder: 5},
	{ID: "2261", Label: "Gdańsk", DisplayOrder: 6},
}

// SeedCounties syncs the database with Counties the same way SeedCategories
// does for categories.
func SeedCounties(ctx context.Context, repo countyStore) error {
	seedIDs := make(map[string]bool, len(Counties))
	for _, c := range Counties {
		seedIDs[c.ID] = true
	}

	existing, err := repo.AllCounties(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing counties: %w", err)
	}

	deleted := 0
	for _, c := range existing {
		if seedIDs[c.ID] {
			continue
		}

		logrus.WithFields(logrus.Fields{"id": c.ID, "label": c.Label}).Info("deleting county")
		if err := repo.DeleteCounty(ctx, c.ID); err != nil {
			return fmt.Errorf("failed to delete county %s: %w", c.ID, err)
		}
		deleted++
	}

	for _, c := range Counties {
		if err := repo.UpsertCounty(ctx, &c); err != nil {
			return fmt.Errorf("failed to upsert county %s: %w", c.ID, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"upserted": len(Counties),
		"deleted":  deleted,
	}).Info("counties synced")

	return nil
}
