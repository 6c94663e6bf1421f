package migrate

import (
	"context"
	"fmt"

	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db/models"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
)

// ModelSet lists every persisted entity in migration order.
func ModelSet() []any {
	return []any{
		&models.User{},
		&models.Sample{},
		&models.Item{},
		&models.Transaction{},
		&models.TransactionDetail{},
		&models.ItemTransactionDetail{},
	}
}

// MaybeRunDev applies the schema automatically when the app is running in dev
// mode and the feature flag is enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "running schema auto-migration (dev auto-run)")

	if err := client.DB().WithContext(ctx).AutoMigrate(ModelSet()...); err != nil {
		return fmt.Errorf("running auto-migration: %w", err)
	}

	logg.Info(ctx, "schema auto-migration completed")
	return nil
}
