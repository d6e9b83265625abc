package seed

import (
	"context"
	"fmt"

	"donatehub/internal/utils"
	"donatehub/pkg/types"

	"github.com/sirupsen/logrus"
)

type categoryStore interface {
	AllCategoriesUnfiltered(ctx context.Context) ([]*types.ResourceCategory, error)
	UpsertCategory(ctx context.Context, category *types.ResourceCategory) error
	DeleteCategory(ctx context.Context, id int) error
}

// Categories is the source of truth for resource categories. The ID is the
// numeric tag carried as category and type in every signup payload, so an
// existing ID must never be reused for a different category.
var Categories = []types.ResourceCategory{
	{
		ID:           1,
		Name:         "Transport",
		Slug:         "transport",
		Description:  utils.StringPtr("Drivers and vehicles for people or supplies"),
		DisplayOrder: 1,
		IsActive:     true,
	},
	{
		ID:           2,
		Name:         "Volunteering",
		Slug:         "volunteering",
		Description:  utils.StringPtr("Hands-on help at collection points and shelters"),
		DisplayOrder: 2,
		IsActive:     true,
	},
	{
		ID:           3,
		Name:         "Translation",
		Slug:         "translation",
		Description:  utils.StringPtr("Interpreting and translating documents"),
		DisplayOrder: 3,
		IsActive:     true,
	},
	{
		ID:           4,
		Name:         "Medical help",
		Slug:         "medical-help",
		Description:  utils.StringPtr("Doctors, nurses, paramedics and psychologists"),
		DisplayOrder: 4,
		IsActive:     true,
	},
	{
		ID:           5,
		Name:         "Legal help",
		Slug:         "legal-help",
		Description:  utils.StringPtr("Advice on residence, work and benefits"),
		DisplayOrder: 5,
		IsActive:     true,
	},
}

// SeedCategories syncs the database with Categories:
// - Inserts new categories that don't exist
// - Updates existing categories that have changed
// - Deletes categories from DB that aren't in the list
func SeedCategories(ctx context.Context, repo categoryStore) error {
	seedIDs := make(map[int]bool, len(Categories))
	for _, cat := range Categories {
		seedIDs[cat.ID] = true
	}

	existing, err := repo.AllCategoriesUnfiltered(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing categories: %w", err)
	}

	deleted := 0
	for _, cat := range existing {
		if seedIDs[cat.ID] {
			continue
		}

		logrus.WithFields(logrus.Fields{"id": cat.ID, "name": cat.Name}).Info("deleting category")
		if err := repo.DeleteCategory(ctx, cat.ID); err != nil {
			return fmt.Errorf("failed to delete category %d: %w", cat.ID, err)
		}
		deleted++
	}

	for _, cat := range Categories {
		if err := repo.UpsertCategory(ctx, &cat); err != nil {
			return fmt.Errorf("failed to upsert category %s: %w", cat.Slug, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"upserted": len(Categories),
		"deleted":  deleted,
	}).Info("categories synced")

	return nil
}
