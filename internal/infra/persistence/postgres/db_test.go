package postgres

import (
	"strings"
	"testing"
	"time"

	"rewards/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a migrated in-memory database private to the test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func seedOffer(t *testing.T, db *gorm.DB, quantity int64) *model.MerchantOfferModel {
	t.Helper()

	now := time.Now().UTC()
	merchant := &model.MerchantModel{
		ID:             uuid.New(),
		OwnerUserID:    uuid.New(),
		Name:           "Kopi Corner",
		RedeemCodeHash: "hash",
	}
	require.NoError(t, db.Create(merchant).Error)

	offer := &model.MerchantOfferModel{
		ID:             uuid.New(),
		MerchantID:     merchant.ID,
		Title:          "Free latte",
		UnitPrice:      100,
		FiatPrice:      1500,
		Quantity:       quantity,
		AvailableAt:    now.Add(-time.Hour),
		AvailableUntil: now.Add(time.Hour),
	}
	require.NoError(t, db.Create(offer).Error)

	return offer
}

func seedVoucher(t *testing.T, db *gorm.DB, offerID uuid.UUID, code string, createdAt time.Time) *model.MerchantOfferVoucherModel {
	t.Helper()

	voucher := &model.MerchantOfferVoucherModel{
		ID:              uuid.New(),
		MerchantOfferID: offerID,
		Code:            code,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(voucher).Error)

	return voucher
}
