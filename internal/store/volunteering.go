package store

import (
	"context"
	"fmt"
	"time"

	"donatehub/internal/utils"
	"donatehub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const volunteeringTableName = "donatehub.volunteering_resources"

var volunteeringColumns = utils.StructTagValues(types.VolunteeringResource{})

type VolunteeringRepository struct {
	pool *pgxpool.Pool
}

func NewVolunteeringRepository(pool *pgxpool.Pool) *VolunteeringRepository {
	return &VolunteeringRepository{pool: pool}
}

// CreateResource stores an accepted signup and returns the stored row.
func (r *VolunteeringRepository) CreateResource(ctx context.Context, req *types.DonateVolunteeringRequest) (*types.VolunteeringResource, error) {
	resource, err := resourceFromRequest(utils.NanoID(), req, time.Now())
	if err != nil {
		return nil, err
	}

	query, args, err := psql().
		Insert(volunteeringTableName).
		SetMap(utils.StructToMap(resource)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert volunteering resource: %w", err)
	}

	return resource, nil
}

func (r *VolunteeringRepository) LatestResources(ctx context.Context, limit uint64) ([]*types.VolunteeringResource, error) {
	query, args, err := latestResourcesQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate latest resources query: %w", err)
	}

	out := make([]*types.VolunteeringResource, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch latest resources: %w", err)
	}

	return out, nil
}

// ResourcesCreatedBetween returns resources created in [from, to) oldest first.
func (r *VolunteeringRepository) ResourcesCreatedBetween(ctx context.Context, from, to time.Time) ([]*types.VolunteeringResource, error) {
	query, args, err := resourcesBetweenQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate resources query: %w", err)
	}

	out := make([]*types.VolunteeringResource, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	return out, nil
}

func latestResourcesQuery(limit uint64) sq.SelectBuilder {
	return psql().
		Select(volunteeringColumns...).
		From(volunteeringTableName).
		OrderBy("created_at DESC").
		Limit(limit)
}

func resourcesBetweenQuery(from, to time.Time) sq.SelectBuilder {
	return psql().
		Select(volunteeringColumns...).
		From(volunteeringTableName).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at ASC")
}

func resourceFromRequest(id string, req *types.DonateVolunteeringRequest, now time.Time) (*types.VolunteeringResource, error) {
	resource := &types.VolunteeringResource{
		ID:             id,
		Name:           req.Name,
		Category:       req.Category,
		Type:           req.Type,
		Town:           nullable(req.Town),
		Description:    nullable(req.Description),
		CountyCoverage: append([]string{}, req.CountyCoverage...),
		CreatedAt:      now.UTC(),
	}

	if req.AvailableUntil != "" {
		until, err := time.Parse(time.DateOnly, req.AvailableUntil)
		if err != nil {
			return nil, fmt.Errorf("parse available_until: %w", err)
		}
		resource.AvailableUntil = &until
	}

	return resource, nil
}
