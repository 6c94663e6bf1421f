package samples

import (
	"context"
	"errors"
	"testing"

	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
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
	require.NoError(t, conn.AutoMigrate(&models.Sample{}))
	return NewRepository(conn)
}

func seedSamples(t *testing.T, repo *Repository, names ...string) []*models.Sample {
	t.Helper()
	out := make([]*models.Sample, 0, len(names))
	for _, name := range names {
		sample, err := repo.Create(context.Background(), CreateSampleDTO{
			Name:     name,
			ImageURL: "https://storage.googleapis.com/bucket/" + name + ".png",
		})
		require.NoError(t, err)
		out = append(out, sample)
	}
	return out
}

func TestRepoListSearchIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	seedSamples(t, repo, "Green Tea", "Black Tea", "Coffee")

	rows, total, err := repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 10, Search: "tea"}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 10, Search: "COFFEE"}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Coffee", rows[0].Name)
}

func TestRepoListPaginatesAndSorts(t *testing.T) {
	repo := newTestRepo(t)
	seedSamples(t, repo, "a", "b", "c", "d", "e")

	params := pagination.Params{Page: 2, PerPage: 2, SortBy: "name", SortOrder: "asc"}.Normalize()
	rows, total, err := repo.List(context.Background(), params)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Name)
	assert.Equal(t, "d", rows[1].Name)
}

func TestRepoListAllBypassesPaging(t *testing.T) {
	repo := newTestRepo(t)
	seedSamples(t, repo, "a", "b", "c", "d", "e")

	rows, total, err := repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 2, All: true}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, rows, 5)
}

func TestRepoListRejectsUnknownSortField(t *testing.T) {
	repo := newTestRepo(t)
	seedSamples(t, repo, "a", "b")

	// Unknown sort columns fall back to created_at instead of reaching SQL.
	_, _, err := repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 10, SortBy: "name; DROP TABLE samples"}.Normalize())
	require.NoError(t, err)
}

func TestRepoSoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	created := seedSamples(t, repo, "doomed")[0]

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.FindByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Second delete deterministically reports not found.
	err = repo.Delete(context.Background(), created.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The soft-deleted row is excluded from listings.
	_, total, err := repo.List(context.Background(), pagination.Params{Page: 1, PerPage: 10}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestRepoUpdateMergesFields(t *testing.T) {
	repo := newTestRepo(t)
	created := seedSamples(t, repo, "original")[0]

	name := "renamed"
	updated, err := repo.Update(context.Background(), created.ID, UpdateSampleDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, created.ImageURL, updated.ImageURL)

	_, err = repo.Update(context.Background(), uuid.New(), UpdateSampleDTO{Name: &name})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
