package seed

import (
	"context"
	"errors"
	"testing"

	"donatehub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	rows     map[int]types.ResourceCategory
	deleted  []int
	fetchErr error
}

func (f *fakeCategories) AllCategoriesUnfiltered(context.Context) ([]*types.ResourceCategory, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]*types.ResourceCategory, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCategories) UpsertCategory(_ context.Context, c *types.ResourceCategory) error {
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id int) error {
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestSeedCategories(t *testing.T) {
	repo := &fakeCategories{rows: map[int]types.ResourceCategory{
		1:  {ID: 1, Name: "Old transport name"},
		99: {ID: 99, Name: "Retired"},
	}}

	require.NoError(t, SeedCategories(context.Background(), repo))

	assert.Equal(t, []int{99}, repo.deleted)
	assert.Len(t, repo.rows, len(Categories))
	assert.Equal(t, "Transport", repo.rows[1].Name)
}

func TestSeedCategories_FetchError(t *testing.T) {
	repo := &fakeCategories{fetchErr: errors.New("down")}
	assert.Error(t, SeedCategories(context.Background(), repo))
}

func TestCategories_UniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, c := range Categories {
		assert.False(t, seen[c.ID], "duplicate category id %d", c.ID)
		seen[c.ID] = true
	}
}

type fakeCounties struct {
	rows    map[string]types.County
	deleted []string
}

func (f *fakeCounties) AllCounties(context.Context) ([]types.County, error) {
	out := make([]types.County, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCounties) UpsertCounty(_ context.Context, c *types.County) error {
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCounties) DeleteCounty(_ context.Context, id string) error {
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestSeedCounties(t *testing.T) {
	repo := &fakeCounties{rows: map[string]types.County{
		"9999": {ID: "9999", Label: "Gone"},
	}}

	require.NoError(t, SeedCounties(context.Background(), repo))

	assert.Equal(t, []string{"9999"}, repo.deleted)
	assert.Len(t, repo.rows, len(Counties))
	assert.Equal(t, "Warszawa", repo.rows["1465"].Label)
}
