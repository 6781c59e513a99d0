package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"rewards/config"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/repository"
	"rewards/internal/infra/persistence/model"
	"rewards/internal/infra/persistence/postgres"
	mockSvc "rewards/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Offers:   &config.OffersConfig{Currency: "IDR", SweepBatchSize: 50, ClaimTimeout: 15 * time.Minute},
		Missions: &config.MissionsConfig{Timezone: "UTC"},
		Payment:  &config.PaymentConfig{Provider: "sandbox", CallbackURL: "https://rewards.test/payments/callback"},
	}
}

// testStore wires the real repositories to a private in-memory database. The single
// connection serializes transactions the way row locks do on PostgreSQL.
type testStore struct {
	db              *gorm.DB
	txManager       repository.TransactionManager
	pointRepo       repository.PointLedgerRepository
	componentRepo   repository.ComponentLedgerRepository
	offerRepo       repository.OfferRepository
	voucherRepo     repository.VoucherRepository
	claimRepo       repository.ClaimRepository
	paymentRepo     repository.PaymentTransactionRepository
	redemptionRepo  repository.RedemptionRepository
	missionRepo     repository.MissionRepository
	publisher       *mockSvc.MockEventPublisher
	orderNumbers    *mockSvc.MockOrderNumberGenerator
	publishedEvents chan *entity.DomainEvent
}

func newTestStore(t *testing.T) *testStore {
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

	require.NoError(t, postgres.Migrate(db))

	store := &testStore{
		db:              db,
		txManager:       postgres.NewTransactionManager(db),
		pointRepo:       postgres.NewPointLedgerRepository(db),
		componentRepo:   postgres.NewComponentLedgerRepository(db),
		offerRepo:       postgres.NewOfferRepository(db),
		voucherRepo:     postgres.NewVoucherRepository(db),
		claimRepo:       postgres.NewClaimRepository(db),
		paymentRepo:     postgres.NewPaymentTransactionRepository(db),
		redemptionRepo:  postgres.NewRedemptionRepository(db),
		missionRepo:     postgres.NewMissionRepository(db),
		publisher:       mockSvc.NewMockEventPublisher(t),
		orderNumbers:    mockSvc.NewMockOrderNumberGenerator(t),
		publishedEvents: make(chan *entity.DomainEvent, 256),
	}

	store.publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*entity.DomainEvent")).
		RunAndReturn(func(_ context.Context, event *entity.DomainEvent) error {
			store.publishedEvents <- event
			return nil
		}).
		Maybe()
	store.orderNumbers.EXPECT().
		NextOrderNo().
		RunAndReturn(func() string { return "ORD" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24] }).
		Maybe()

	return store
}

// events drains what was published so far.
func (s *testStore) events() []*entity.DomainEvent {
	var out []*entity.DomainEvent
	for {
		select {
		case e := <-s.publishedEvents:
			out = append(out, e)
		default:
			return out
		}
	}
}

type seededOffer struct {
	merchant *model.MerchantModel
	offer    *model.MerchantOfferModel
	vouchers []*model.MerchantOfferVoucherModel
}

// seedOffer creates a live offer with quantity units of inventory and the given number of vouchers.
func (s *testStore) seedOffer(t *testing.T, quantity int64, vouchers int) *seededOffer {
	t.Helper()

	now := time.Now().UTC()
	merchant := &model.MerchantModel{
		ID:             uuid.New(),
		OwnerUserID:    uuid.New(),
		Name:           "Kopi Corner",
		RedeemCodeHash: "hashed-1234",
	}
	require.NoError(t, s.db.Create(merchant).Error)

	offer := &model.MerchantOfferModel{
		ID:             uuid.New(),
		MerchantID:     merchant.ID,
		Title:          "Free latte",
		UnitPrice:      100,
		FiatPrice:      25000,
		Quantity:       quantity,
		AvailableAt:    now.Add(-time.Hour),
		AvailableUntil: now.Add(24 * time.Hour),
	}
	require.NoError(t, s.db.Create(offer).Error)

	seeded := &seededOffer{merchant: merchant, offer: offer}
	for i := 0; i < vouchers; i++ {
		voucher := &model.MerchantOfferVoucherModel{
			ID:              uuid.New(),
			MerchantOfferID: offer.ID,
			Code:            "V-" + uuid.NewString()[:8],
			CreatedAt:       now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, s.db.Create(voucher).Error)
		seeded.vouchers = append(seeded.vouchers, voucher)
	}

	return seeded
}

func (s *testStore) creditPoints(t *testing.T, userID uuid.UUID, amount int64) {
	t.Helper()

	err := s.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		ref := entity.LedgerReference{Type: entity.ReferenceAdjustment, ID: uuid.New()}
		_, err := appendPointEntry(context.Background(), repoFactory.PointLedgerRepo(), userID, amount, entity.DirectionCredit, ref, "seed", time.Now().UTC())
		return err
	})
	require.NoError(t, err)
}

func (s *testStore) pointsOf(t *testing.T, userID uuid.UUID) int64 {
	t.Helper()

	_, balance, err := pointsBalance(context.Background(), s.pointRepo, userID)
	require.NoError(t, err)

	return balance
}

func (s *testStore) offerQuantity(t *testing.T, offerID uuid.UUID) int64 {
	t.Helper()

	offer, err := s.offerRepo.FindOfferByID(context.Background(), offerID)
	require.NoError(t, err)

	return offer.Quantity
}

func (s *testStore) availableVouchers(t *testing.T, offerID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, s.db.Model(&model.MerchantOfferVoucherModel{}).
		Where("merchant_offer_id = ? AND owned_by_id IS NULL AND voided = ?", offerID, false).
		Count(&count).Error)

	return count
}

func (s *testStore) seedComponent(t *testing.T, code string) uuid.UUID {
	t.Helper()

	component := &model.PointComponentModel{ID: uuid.New(), Code: code, Name: code}
	require.NoError(t, s.db.Create(component).Error)

	return component.ID
}

func (s *testStore) seedRecipe(t *testing.T, rewardPoints int64, active bool, requirements ...entity.ComponentAmount) uuid.UUID {
	t.Helper()

	raw, err := json.Marshal(requirements)
	require.NoError(t, err)

	recipe := &model.ComponentRecipeModel{
		ID:           uuid.New(),
		Name:         "Breakfast set",
		Requirements: datatypes.JSON(raw),
		RewardPoints: rewardPoints,
		IsActive:     active,
	}
	require.NoError(t, s.db.Create(recipe).Error)

	return recipe.ID
}

func (s *testStore) seedMission(t *testing.T, frequency entity.MissionFrequency, auto bool, reward entity.MissionReward, goals ...entity.MissionGoal) uuid.UUID {
	t.Helper()

	rawGoals, err := json.Marshal(goals)
	require.NoError(t, err)
	rawReward, err := json.Marshal(reward)
	require.NoError(t, err)

	mission := &model.MissionModel{
		ID:                  uuid.New(),
		Name:                "Coffee lover",
		Frequency:           frequency.String(),
		Goals:               datatypes.JSON(rawGoals),
		Reward:              datatypes.JSON(rawReward),
		AutoDisburseRewards: auto,
		IsActive:            true,
	}
	require.NoError(t, s.db.Create(mission).Error)

	return mission.ID
}
