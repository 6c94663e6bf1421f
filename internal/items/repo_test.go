package items

import (
	"context"
	"errors"
	"testing"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Item{}))
	return NewRepository(conn)
}

func seedItems(t *testing.T, repo *Repository, prices map[string]int64) map[string]*models.Item {
	t.Helper()
	out := map[string]*models.Item{}
	for name, price := range prices {
		item, err := repo.Create(context.Background(), CreateItemDTO{Name: name, Price: price})
		require.NoError(t, err)
		out[name] = item
	}
	return out
}

func TestRepoListSortsByPrice(t *testing.T) {
	repo := newTestRepo(t)
	seedItems(t, repo, map[string]int64{"espresso": 18000, "latte": 25000, "water": 5000})

	rows, total, err := repo.List(context.Background(), pagination.Params{
		Page: 1, PerPage: 10, SortBy: "price", SortOrder: "asc",
	}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, "water", rows[0].Name)
	assert.Equal(t, "latte", rows[2].Name)
}

func TestRepoListSearch(t *testing.T) {
	repo := newTestRepo(t)
	seedItems(t, repo, map[string]int64{"Iced Latte": 27000, "Hot Latte": 25000, "Espresso": 18000})

	rows, total, err := repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 10, Search: "latte"}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)
}

func TestRepoUpdatePrice(t *testing.T) {
	repo := newTestRepo(t)
	created := seedItems(t, repo, map[string]int64{"latte": 25000})["latte"]

	price := int64(26000)
	updated, err := repo.Update(context.Background(), created.ID, UpdateItemDTO{Price: &price})
	require.NoError(t, err)
	assert.EqualValues(t, 26000, updated.Price)
	assert.Equal(t, "latte", updated.Name)
}

func TestRepoSoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	created := seedItems(t, repo, map[string]int64{"latte": 25000})["latte"]

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.FindByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Delete(context.Background(), created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
