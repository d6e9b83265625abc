package types

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("resource category not found")

// ResourceCategory is the numeric tag a signup dialog is opened for. Its ID is
// carried into every DonateVolunteeringRequest as both category and type.
type ResourceCategory struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  *string   `db:"description"`
	DisplayOrder int       `db:"display_order"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}
