package loyalty

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/optio/loyalty-rewards/pkg/coupon"
	"github.com/optio/loyalty-rewards/pkg/documents"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/notifications"
	"github.com/optio/loyalty-rewards/pkg/storage"
	"github.com/optio/loyalty-rewards/pkg/storage/mocks"
	"github.com/optio/loyalty-rewards/pkg/tiers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// capturingPublisher records every published message for assertions.
type capturingPublisher struct {
	mu       sync.Mutex
	messages []notifications.Message
}

func (p *capturingPublisher) Publish(ctx context.Context, message notifications.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
	return nil
}

func (p *capturingPublisher) byType(t notifications.MessageType) []notifications.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []notifications.Message
	for _, m := range p.messages {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// capturingScheduler records every render request for assertions.
type capturingScheduler struct {
	requests []*documents.RenderRequest
}

func (s *capturingScheduler) ScheduleRender(ctx context.Context, req *documents.RenderRequest) error {
	s.requests = append(s.requests, req)
	return nil
}

// fixedGenerator returns a scripted sequence of coupon codes.
type fixedGenerator struct {
	codes []string
	next  int
}

func (g *fixedGenerator) Generate() (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}

func testTable(t *testing.T) *tiers.Table {
	t.Helper()
	table, err := tiers.NewTable([]models.RewardTier{
		{TierLevel: 1, TierName: "Bronze", MinPoints: 0},
		{TierLevel: 2, TierName: "Silver", MinPoints: 1000},
		{TierLevel: 3, TierName: "Gold", MinPoints: 5000},
		{TierLevel: 4, TierName: "Platinum", MinPoints: 15000},
	})
	assert.NoError(t, err)
	return table
}

func newTestService(t *testing.T, store storage.ApiStore) (*Service, *capturingPublisher, *capturingScheduler) {
	t.Helper()
	publisher := &capturingPublisher{}
	scheduler := &capturingScheduler{}
	svc := NewService(store, testTable(t), coupon.NewRandomGenerator(), publisher, scheduler, Config{
		SignupPoints:    10000,
		DailyLoginBonus: 10,
	})
	return svc, publisher, scheduler
}

func existingUser(mockStore *mocks.ApiStore, balance, totalEarned int64, tierLevel int) {
	mockStore.On("GetLedger", mock.Anything, "user1").
		Return(&models.Ledger{UserID: "user1", Balance: balance, Version: 2}, nil)
	mockStore.On("GetTierState", mock.Anything, "user1").
		Return(&models.TierState{
			UserID:            "user1",
			CurrentTierLevel:  tierLevel,
			TotalPointsEarned: totalEarned,
			TierPoints:        totalEarned,
			Version:           2,
		}, nil).Once()
}

func TestProfile(t *testing.T) {
	t.Run("Existing User", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 7500, 10000, 3)

		svc, _, _ := newTestService(t, mockStore)
		profile, err := svc.Profile(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, int64(7500), profile.Ledger.Balance)
		assert.Equal(t, 3, profile.TierState.CurrentTierLevel)
		assert.Equal(t, "Gold", profile.Progress.CurrentTier.TierName)
		assert.Equal(t, int64(5000), profile.Progress.PointsToNext)
		mockStore.AssertExpectations(t)
	})

	t.Run("First Contact Materializes Profile With Signup Bonus", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("GetLedger", mock.Anything, "newuser").
			Return(nil, storage.ErrLedgerNotFound)
		mockStore.On("CreateProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(state *models.TierState) bool {
			return state.CurrentTierLevel == 1
		})).Return(
			&models.Ledger{UserID: "newuser", Balance: 0, Version: 1},
			&models.TierState{UserID: "newuser", CurrentTierLevel: 1, Version: 1},
			nil,
		)
		mockStore.On("RecordActivity", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
			return a.ActivityType == models.ActivityWelcomeBonus && a.PointsEarned == 10000
		})).Return(&models.Activity{ID: "a1"}, nil)
		// 10000 lifetime points land directly on Gold, skipping Silver.
		mockStore.On("PromoteTierState", mock.Anything, mock.Anything, mock.MatchedBy(func(tier models.RewardTier) bool {
			return tier.TierName == "Gold"
		})).Return(&models.TierState{
			UserID:            "newuser",
			CurrentTierLevel:  3,
			TotalPointsEarned: 10000,
			TierPoints:        5000,
			Version:           3,
		}, nil)

		svc, publisher, _ := newTestService(t, mockStore)
		profile, err := svc.Profile(context.Background(), "newuser")

		assert.NoError(t, err)
		assert.Equal(t, int64(10000), profile.Ledger.Balance)
		assert.Equal(t, 3, profile.TierState.CurrentTierLevel)

		upgrades := publisher.byType(notifications.MessageTypeTierUpgrade)
		assert.Len(t, upgrades, 1)
		payload := upgrades[0].Payload.(notifications.TierUpgradePayload)
		assert.Equal(t, "Bronze", payload.FromTierName)
		assert.Equal(t, "Gold", payload.ToTierName)

		mockStore.AssertExpectations(t)
	})

	t.Run("Lost Create Race Reads Winner Without Second Bonus", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("GetLedger", mock.Anything, "newuser").
			Return(nil, storage.ErrLedgerNotFound).Once()
		mockStore.On("CreateProfile", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil, storage.ErrProfileExists)
		// The winner already committed both rows and the welcome bonus.
		mockStore.On("GetLedger", mock.Anything, "newuser").
			Return(&models.Ledger{UserID: "newuser", Balance: 10000, Version: 2}, nil).Once()
		mockStore.On("GetTierState", mock.Anything, "newuser").
			Return(&models.TierState{UserID: "newuser", CurrentTierLevel: 3, TotalPointsEarned: 10000, Version: 3}, nil)

		svc, publisher, _ := newTestService(t, mockStore)
		profile, err := svc.Profile(context.Background(), "newuser")

		assert.NoError(t, err)
		assert.Equal(t, int64(10000), profile.Ledger.Balance)
		mockStore.AssertNotCalled(t, "RecordActivity")
		assert.Empty(t, publisher.messages)
		mockStore.AssertExpectations(t)
	})

	t.Run("Orphaned Ledger Gets Tier State Repaired", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("GetLedger", mock.Anything, "user1").
			Return(&models.Ledger{UserID: "user1", Balance: 300, Version: 4}, nil)
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(nil, storage.ErrTierStateNotFound).Once()
		mockStore.On("CreateTierState", mock.Anything, mock.MatchedBy(func(state *models.TierState) bool {
			return state.UserID == "user1" && state.CurrentTierLevel == 1
		})).Return(&models.TierState{UserID: "user1", CurrentTierLevel: 1, Version: 1}, nil)

		svc, _, _ := newTestService(t, mockStore)
		profile, err := svc.Profile(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, int64(300), profile.Ledger.Balance)
		assert.Equal(t, 1, profile.TierState.CurrentTierLevel)
		mockStore.AssertExpectations(t)

		// The repair sticks: the next read finds the written state.
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(&models.TierState{UserID: "user1", CurrentTierLevel: 1, Version: 1}, nil).Once()
		profile, err = svc.Profile(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Equal(t, 1, profile.TierState.CurrentTierLevel)
	})

	t.Run("Concurrent Repair Loses Cleanly", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("GetLedger", mock.Anything, "user1").
			Return(&models.Ledger{UserID: "user1", Balance: 300, Version: 4}, nil)
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(nil, storage.ErrTierStateNotFound).Once()
		mockStore.On("CreateTierState", mock.Anything, mock.Anything).
			Return(nil, storage.ErrTierStateExists)
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(&models.TierState{UserID: "user1", CurrentTierLevel: 2, Version: 1}, nil).Once()

		svc, _, _ := newTestService(t, mockStore)
		profile, err := svc.Profile(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, 2, profile.TierState.CurrentTierLevel)
		mockStore.AssertExpectations(t)
	})
}

func TestRecordActivity(t *testing.T) {
	t.Run("Credit Without Promotion", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 500, 500, 1)
		mockStore.On("RecordActivity", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
			return a.ActivityType == models.ActivityReview && a.PointsEarned == 100
		})).Return(&models.Activity{ID: "a1", PointsEarned: 100}, nil)

		svc, publisher, _ := newTestService(t, mockStore)
		activity, err := svc.RecordActivity(context.Background(), "user1", models.ActivityReview, 100, "Left a review")

		assert.NoError(t, err)
		assert.Equal(t, int64(100), activity.PointsEarned)
		// 600 lifetime points is still below the Silver threshold.
		mockStore.AssertNotCalled(t, "PromoteTierState")
		assert.Len(t, publisher.byType(notifications.MessageTypePointsEarned), 1)
		mockStore.AssertExpectations(t)
	})

	t.Run("Large Credit Jumps Multiple Tiers", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 0, 0, 1)
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{ID: "a1", PointsEarned: 6000}, nil)
		var promotedTo models.RewardTier
		mockStore.On("PromoteTierState", mock.Anything, mock.Anything, mock.AnythingOfType("models.RewardTier")).
			Run(func(args mock.Arguments) {
				promotedTo = args.Get(2).(models.RewardTier)
			}).
			Return(&models.TierState{UserID: "user1", CurrentTierLevel: 3, TotalPointsEarned: 6000, TierPoints: 1000}, nil)

		svc, _, _ := newTestService(t, mockStore)
		_, err := svc.RecordActivity(context.Background(), "user1", models.ActivityReferral, 6000, "Referral reward")

		assert.NoError(t, err)
		// One evaluation lands directly on Gold, never pausing on Silver.
		assert.Equal(t, "Gold", promotedTo.TierName)
		mockStore.AssertNumberOfCalls(t, "PromoteTierState", 1)
		mockStore.AssertExpectations(t)
	})

	t.Run("Already At Qualified Tier Is A No-Op", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 6000, 6000, 3)
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{ID: "a1", PointsEarned: 50}, nil)

		svc, publisher, _ := newTestService(t, mockStore)
		_, err := svc.RecordActivity(context.Background(), "user1", models.ActivityReview, 50, "Review")

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "PromoteTierState")
		assert.Empty(t, publisher.byType(notifications.MessageTypeTierUpgrade))
		mockStore.AssertExpectations(t)
	})

	t.Run("Lost Promotion Race Picks Up Winner", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 0, 0, 1)
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{ID: "a1", PointsEarned: 2000}, nil)
		mockStore.On("PromoteTierState", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrVersionConflict)
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(&models.TierState{UserID: "user1", CurrentTierLevel: 2, TotalPointsEarned: 2000}, nil).Once()

		svc, publisher, _ := newTestService(t, mockStore)
		_, err := svc.RecordActivity(context.Background(), "user1", models.ActivityTransaction, 2000, "Purchase")

		assert.NoError(t, err)
		// The losing evaluation does not announce an upgrade it did not apply.
		assert.Empty(t, publisher.byType(notifications.MessageTypeTierUpgrade))
		mockStore.AssertExpectations(t)
	})

	t.Run("Negative Points Rejected", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)

		svc, _, _ := newTestService(t, mockStore)
		_, err := svc.RecordActivity(context.Background(), "user1", models.ActivityReview, -5, "")

		assert.Error(t, err)
		mockStore.AssertNotCalled(t, "RecordActivity")
	})
}

func TestRecordDailyLogin(t *testing.T) {
	t.Run("First Login Of The Day", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 100, 100, 1)
		mockStore.On("HasActivityOnDay", mock.Anything, "user1", models.ActivityLogin, mock.AnythingOfType("time.Time")).
			Return(false, nil)
		// The award path re-reads the profile.
		mockStore.On("GetTierState", mock.Anything, "user1").
			Return(&models.TierState{UserID: "user1", CurrentTierLevel: 1, TotalPointsEarned: 100, Version: 2}, nil)
		mockStore.On("RecordActivity", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
			return a.ActivityType == models.ActivityLogin && a.PointsEarned == 10
		})).Return(&models.Activity{ID: "a1", PointsEarned: 10}, nil)

		svc, _, _ := newTestService(t, mockStore)
		activity, awarded, err := svc.RecordDailyLogin(context.Background(), "user1")

		assert.NoError(t, err)
		assert.True(t, awarded)
		assert.Equal(t, int64(10), activity.PointsEarned)
		mockStore.AssertExpectations(t)
	})

	t.Run("Second Login Same Day Awards Nothing", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 110, 110, 1)
		mockStore.On("HasActivityOnDay", mock.Anything, "user1", models.ActivityLogin, mock.AnythingOfType("time.Time")).
			Return(true, nil)

		svc, _, _ := newTestService(t, mockStore)
		activity, awarded, err := svc.RecordDailyLogin(context.Background(), "user1")

		assert.NoError(t, err)
		assert.False(t, awarded)
		assert.Nil(t, activity)
		mockStore.AssertNotCalled(t, "RecordActivity")
		mockStore.AssertExpectations(t)
	})
}

func TestRedeem(t *testing.T) {
	completed := time.Now().UTC()
	redemption := &models.Redemption{
		ID:           "r1",
		UserID:       "user1",
		VoucherID:    "voucher1",
		VoucherTitle: "Coffee Voucher",
		Quantity:     1,
		PointsUsed:   2500,
		CouponCode:   "AAAA1111",
		Status:       models.COMPLETED,
		CompletedAt:  &completed,
	}

	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("RedeemVoucher", mock.Anything, "user1", "voucher1", int64(1), mock.AnythingOfType("string")).
			Return(redemption, nil)
		mockStore.On("RecordActivity", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
			return a.ActivityType == models.ActivityRedemption && a.PointsEarned == 0
		})).Return(&models.Activity{ID: "a1"}, nil)

		svc, publisher, scheduler := newTestService(t, mockStore)
		got, err := svc.Redeem(context.Background(), "user1", "voucher1", 1)

		assert.NoError(t, err)
		assert.Equal(t, "r1", got.ID)

		confirmations := publisher.byType(notifications.MessageTypeRedemption)
		assert.Len(t, confirmations, 1)
		assert.Len(t, scheduler.requests, 1)
		assert.Equal(t, "r1", scheduler.requests[0].RedemptionID)

		mockStore.AssertExpectations(t)
	})

	t.Run("Coupon Collision Retries With Fresh Code", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("RedeemVoucher", mock.Anything, "user1", "voucher1", int64(1), "TAKEN001").
			Return(nil, storage.ErrCouponCollision).Once()
		mockStore.On("RedeemVoucher", mock.Anything, "user1", "voucher1", int64(1), "FRESH002").
			Return(redemption, nil).Once()
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{ID: "a1"}, nil)

		svc, _, _ := newTestService(t, mockStore)
		svc.Codes = &fixedGenerator{codes: []string{"TAKEN001", "FRESH002"}}
		got, err := svc.Redeem(context.Background(), "user1", "voucher1", 1)

		assert.NoError(t, err)
		assert.Equal(t, "r1", got.ID)
		mockStore.AssertExpectations(t)
	})

	t.Run("Collision Retries Exhausted", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("RedeemVoucher", mock.Anything, "user1", "voucher1", int64(1), mock.AnythingOfType("string")).
			Return(nil, storage.ErrCouponCollision)

		svc, _, scheduler := newTestService(t, mockStore)
		_, err := svc.Redeem(context.Background(), "user1", "voucher1", 1)

		assert.ErrorIs(t, err, ErrRedemptionFailed)
		mockStore.AssertNumberOfCalls(t, "RedeemVoucher", 5)
		assert.Empty(t, scheduler.requests)
	})

	t.Run("Insufficient Points Propagates", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 100, 100, 1)
		mockStore.On("RedeemVoucher", mock.Anything, "user1", "voucher1", int64(1), mock.AnythingOfType("string")).
			Return(nil, storage.ErrInsufficientPoints)

		svc, _, scheduler := newTestService(t, mockStore)
		_, err := svc.Redeem(context.Background(), "user1", "voucher1", 1)

		assert.ErrorIs(t, err, storage.ErrInsufficientPoints)
		mockStore.AssertNumberOfCalls(t, "RedeemVoucher", 1)
		assert.Empty(t, scheduler.requests)
		mockStore.AssertNotCalled(t, "RecordActivity")
	})
}

func TestCheckout(t *testing.T) {
	items := []models.CartItem{
		{VoucherID: "v1", Quantity: 1},
		{VoucherID: "v2", Quantity: 2},
	}
	redemptions := []models.Redemption{
		{ID: "r1", UserID: "user1", VoucherID: "v1", VoucherTitle: "A", PointsUsed: 1000, Status: models.COMPLETED},
		{ID: "r2", UserID: "user1", VoucherID: "v2", VoucherTitle: "B", PointsUsed: 1000, Status: models.COMPLETED},
	}

	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("CheckoutCart", mock.Anything, "user1", items, mock.MatchedBy(func(codes []string) bool {
			return len(codes) == 2 && codes[0] != codes[1]
		})).Return(redemptions, nil)
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{}, nil)

		svc, publisher, scheduler := newTestService(t, mockStore)
		got, err := svc.Checkout(context.Background(), "user1", items)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Len(t, publisher.byType(notifications.MessageTypeRedemption), 2)
		assert.Len(t, scheduler.requests, 2)
		mockStore.AssertExpectations(t)
	})

	t.Run("Collision Retries Whole Cart", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("CheckoutCart", mock.Anything, "user1", items, mock.Anything).
			Return(nil, storage.ErrCouponCollision).Once()
		mockStore.On("CheckoutCart", mock.Anything, "user1", items, mock.Anything).
			Return(redemptions, nil).Once()
		mockStore.On("RecordActivity", mock.Anything, mock.Anything).
			Return(&models.Activity{}, nil)

		svc, _, _ := newTestService(t, mockStore)
		got, err := svc.Checkout(context.Background(), "user1", items)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		mockStore.AssertNumberOfCalls(t, "CheckoutCart", 2)
		mockStore.AssertExpectations(t)
	})

	t.Run("Atomic Failure Propagates Untouched", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		existingUser(mockStore, 10000, 10000, 3)
		mockStore.On("CheckoutCart", mock.Anything, "user1", items, mock.Anything).
			Return(nil, storage.ErrInsufficientStock)

		svc, publisher, scheduler := newTestService(t, mockStore)
		_, err := svc.Checkout(context.Background(), "user1", items)

		assert.ErrorIs(t, err, storage.ErrInsufficientStock)
		assert.Empty(t, publisher.byType(notifications.MessageTypeRedemption))
		assert.Empty(t, scheduler.requests)
		mockStore.AssertExpectations(t)
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("Misconfigured Table Fails Fast", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("ListTiers", mock.Anything).Return([]models.RewardTier{
			{TierLevel: 1, TierName: "Bronze", MinPoints: 0},
			{TierLevel: 2, TierName: "Silver", MinPoints: 1000},
			{TierLevel: 3, TierName: "Gold", MinPoints: 800},
		}, nil)

		_, err := LoadTable(context.Background(), mockStore)

		assert.ErrorIs(t, err, tiers.ErrMisconfiguredTierTable)
	})

	t.Run("Valid Table Loads", func(t *testing.T) {
		mockStore := new(mocks.ApiStore)
		mockStore.On("ListTiers", mock.Anything).Return([]models.RewardTier{
			{TierLevel: 1, TierName: "Bronze", MinPoints: 0},
			{TierLevel: 2, TierName: "Silver", MinPoints: 1000},
		}, nil)

		table, err := LoadTable(context.Background(), mockStore)

		assert.NoError(t, err)
		assert.Len(t, table.All(), 2)
	})
}
