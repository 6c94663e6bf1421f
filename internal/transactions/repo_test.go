package transactions

import (
	"context"
	"errors"
	"testing"

	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	"github.com/bintangpramudya/kasirpay-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) (*Repository, *db.Client) {
	t.Helper()
	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    "file::memory:",
	}, nil)
	require.NoError(t, err)
	require.NoError(t, client.DB().AutoMigrate(
		&models.Item{},
		&models.Transaction{},
		&models.TransactionDetail{},
		&models.ItemTransactionDetail{},
	))
	return NewRepository(client), client
}

func seedItem(t *testing.T, client *db.Client, name string, price int64) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Price: price}
	require.NoError(t, client.DB().Create(item).Error)
	return item
}

func TestRepoCreateWithDetailsPersistsAllLevels(t *testing.T) {
	repo, client := newTestRepo(t)
	item := seedItem(t, client, "latte", 25000)

	txn := &models.Transaction{
		Status:      enums.TransactionStatusPending,
		TotalAmount: 50000,
		AdminFee:    350,
		Details: []models.TransactionDetail{{
			Quantity:    2,
			TotalAmount: 50000,
			ItemLinks:   []models.ItemTransactionDetail{{ItemID: item.ID}},
		}},
	}
	require.NoError(t, repo.CreateWithDetails(context.Background(), txn))
	require.NotEqual(t, uuid.Nil, txn.ID)

	loaded, err := repo.FindByID(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.TransactionStatusPending, loaded.Status)
	require.Len(t, loaded.Details, 1)
	require.Len(t, loaded.Details[0].ItemLinks, 1)
	require.NotNil(t, loaded.Details[0].ItemLinks[0].Item)
	assert.Equal(t, "latte", loaded.Details[0].ItemLinks[0].Item.Name)
}

func TestRepoFindByIDUnknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepoUpdateStatus(t *testing.T) {
	repo, _ := newTestRepo(t)

	txn := &models.Transaction{Status: enums.TransactionStatusPending, TotalAmount: 1000}
	require.NoError(t, repo.CreateWithDetails(context.Background(), txn))

	require.NoError(t, repo.UpdateStatus(context.Background(), txn.ID, enums.TransactionStatusSettlement))

	loaded, err := repo.FindByID(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.TransactionStatusSettlement, loaded.Status)

	err = repo.UpdateStatus(context.Background(), uuid.New(), enums.TransactionStatusCancel)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepoListPaginates(t *testing.T) {
	repo, _ := newTestRepo(t)

	for i := 0; i < 5; i++ {
		txn := &models.Transaction{Status: enums.TransactionStatusPending, TotalAmount: int64(1000 * (i + 1))}
		require.NoError(t, repo.CreateWithDetails(context.Background(), txn))
	}

	rows, total, err := repo.List(context.Background(), pagination.Params{
		Page: 1, PerPage: 2, SortBy: "total_amount", SortOrder: "asc",
	}.Normalize())
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, rows, 2)
	assert.EqualValues(t, 1000, rows[0].TotalAmount)
}
