package store

import (
	"context"
	"fmt"

	"donatehub/internal/utils"
	"donatehub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const countyTableName = "donatehub.counties"

var countyColumns = utils.StructTagValues(types.County{})

type CountyRepository struct {
	pool *pgxpool.Pool
}

func NewCountyRepository(pool *pgxpool.Pool) *CountyRepository {
	return &CountyRepository{pool: pool}
}

func (r *CountyRepository) AllCounties(ctx context.Context) ([]types.County, error) {
	query, args, err := psql().
		Select(countyColumns...).
		From(countyTableName).
		OrderBy("display_order ASC", "label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate counties query: %w", err)
	}

	var counties []types.County
	err = pgxscan.Select(ctx, r.pool, &counties, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch counties: %w", err)
	}

	return counties, nil
}

func (r *CountyRepository) UpsertCounty(ctx context.Context, county *types.County) error {
	countyMap := utils.StructToMap(county)

	query, args, err := psql().
		Insert(countyTableName).
		SetMap(countyMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(countyMap, "id")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert county: %w", err)
	}

	return nil
}

func (r *CountyRepository) DeleteCounty(ctx context.Context, id string) error {
	query, args, err := psql().
		Delete(countyTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete county: %w", err)
	}

	return nil
}
