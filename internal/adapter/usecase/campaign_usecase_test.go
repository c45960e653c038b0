package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-auction/internal/adapter/memory"
	"promo-auction/internal/core/auction"
	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/metrics"
	"promo-auction/internal/core/port"
	"promo-auction/internal/core/port/mocks"
	"promo-auction/internal/core/quality"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type suite struct {
	store    *memory.Store
	payments *mocks.MockPaymentValidator
	uc       *CampaignUseCase
	provider uuid.UUID
	seq      int
}

func newSuite(t *testing.T, publisher port.EventPublisher, settings Settings) *suite {
	t.Helper()
	store := memory.NewStore()
	payments := mocks.NewMockPaymentValidator(t)
	resolver := auction.NewResolver(store, store, store, quality.NewEvaluator(nil, 0), auction.Options{
		Publisher: publisher,
		Now:       func() time.Time { return now },
	})
	uc := NewCampaignUseCase(store, store, payments, resolver, settings, nil)
	uc.now = func() time.Time { return now }
	return &suite{store: store, payments: payments, uc: uc, provider: uuid.New()}
}

// seed stores a campaign directly, bypassing creation checks.
func (s *suite) seed(t *testing.T, mutate func(c *domain.Campaign)) *domain.Campaign {
	t.Helper()
	s.seq++
	c := &domain.Campaign{
		ID:         uuid.New(),
		ProviderID: s.provider,
		ServiceID:  uuid.New(),
		Name:       fmt.Sprintf("campaign %d", s.seq),
		AdType:     domain.AdTypeBanner,
		BudgetType: domain.BudgetTotal,
		Budget:     decimal.NewFromInt(100),
		Status:     domain.StatusActive,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(30 * 24 * time.Hour),
		Targeting:  domain.Targeting{Category: "plumbing"},
		CreatedAt:  now.Add(time.Duration(s.seq) * time.Minute),
	}
	if mutate != nil {
		mutate(c)
	}
	require.NoError(t, s.store.CreateCampaign(context.Background(), c))
	return c
}

func (s *suite) bid(t *testing.T, c *domain.Campaign, amount string) *domain.Bid {
	t.Helper()
	b, err := s.uc.PlaceBid(context.Background(), port.PlaceBidReq{
		CampaignID: c.ID,
		ProviderID: c.ProviderID,
		Amount:     decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return b
}

func (s *suite) get(t *testing.T, id uuid.UUID) *domain.Campaign {
	t.Helper()
	c, err := s.store.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func amountOf(v string) any {
	want := decimal.RequireFromString(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func validCreateReq(provider uuid.UUID) port.CreateCampaignReq {
	return port.CreateCampaignReq{
		ProviderID: provider,
		ServiceID:  uuid.New(),
		Name:       "  Spring promo ",
		AdType:     domain.AdTypeBanner,
		Budget:     decimal.NewFromInt(25),
		StartDate:  now.Add(time.Hour),
		EndDate:    now.Add(10 * 24 * time.Hour),
		Targeting:  domain.Targeting{Category: " Plumbing ", Location: "Berlin"},
	}
}

func TestCreateCampaign_Draft(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())

	c, err := s.uc.CreateCampaign(context.Background(), validCreateReq(s.provider))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, domain.BudgetTotal, c.BudgetType)
	assert.Equal(t, "Spring promo", c.Name)
	assert.Equal(t, domain.Targeting{Category: "plumbing", Location: "berlin"}, c.Targeting)
	assert.Nil(t, c.CurrentPosition)
	assert.True(t, c.Spent.IsZero())

	stored := s.get(t, c.ID)
	assert.Equal(t, c.ID, stored.ID)
}

func TestCreateCampaign_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *port.CreateCampaignReq)
		field  string
	}{
		{"quick boost", func(r *port.CreateCampaignReq) { r.AdType = domain.AdTypeQuickBoost }, "ad_type"},
		{"unknown ad type", func(r *port.CreateCampaignReq) { r.AdType = "billboard" }, "ad_type"},
		{"unknown budget type", func(r *port.CreateCampaignReq) { r.BudgetType = "weekly" }, "budget_type"},
		{"banner below minimum", func(r *port.CreateCampaignReq) { r.Budget = decimal.RequireFromString("24.99") }, "budget"},
		{"top search below minimum", func(r *port.CreateCampaignReq) {
			r.AdType = domain.AdTypeTopSearch
			r.Budget = decimal.NewFromInt(49)
		}, "budget"},
		{"end before start", func(r *port.CreateCampaignReq) { r.EndDate = r.StartDate.Add(-time.Minute) }, "end_date"},
		{"start in the past", func(r *port.CreateCampaignReq) { r.StartDate = now.Add(-time.Minute) }, "start_date"},
		{"missing category", func(r *port.CreateCampaignReq) { r.Targeting.Category = "  " }, "targeting.category"},
		{"missing service", func(r *port.CreateCampaignReq) { r.ServiceID = uuid.Nil }, "service_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSuite(t, nil, DefaultSettings())
			req := validCreateReq(s.provider)
			tt.mutate(&req)

			_, err := s.uc.CreateCampaign(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestActivateCampaign_BudgetBelowMinimumStaysDraft(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, func(c *domain.Campaign) {
		c.Status = domain.StatusDraft
		c.Budget = decimal.NewFromInt(3)
	})

	_, err := s.uc.ActivateCampaign(context.Background(), port.ActivateReq{
		CampaignID: c.ID, ProviderID: s.provider, PaymentMethodID: "pm_1",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "budget", verr.Field)
	assert.Equal(t, domain.StatusDraft, s.get(t, c.ID).Status)
}

func TestActivateCampaign_PaymentRejectedStaysDraft(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_declined", amountOf("100")).
		Return(false, nil).
		Once()

	_, err := s.uc.ActivateCampaign(context.Background(), port.ActivateReq{
		CampaignID: c.ID, ProviderID: s.provider, PaymentMethodID: "pm_declined",
	})

	require.ErrorIs(t, err, domain.ErrActivation)
	assert.Equal(t, domain.StatusDraft, s.get(t, c.ID).Status)
}

func TestActivateCampaign_PaymentTimeoutStaysDraft(t *testing.T) {
	settings := DefaultSettings()
	settings.PaymentTimeout = 20 * time.Millisecond
	s := newSuite(t, nil, settings)
	c := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_slow", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, _ string, _ decimal.Decimal) (bool, error) {
			<-ctx.Done()
			return false, ctx.Err()
		}).
		Once()

	_, err := s.uc.ActivateCampaign(context.Background(), port.ActivateReq{
		CampaignID: c.ID, ProviderID: s.provider, PaymentMethodID: "pm_slow",
	})

	require.ErrorIs(t, err, domain.ErrActivation)
	assert.Contains(t, err.Error(), "timed out")
	assert.Equal(t, domain.StatusDraft, s.get(t, c.ID).Status)
}

func TestActivateCampaign_MissingPaymentMethod(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })

	_, err := s.uc.ActivateCampaign(context.Background(), port.ActivateReq{CampaignID: c.ID, ProviderID: s.provider})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivateCampaign_JoinsSegment(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	incumbent := s.seed(t, nil)
	s.bid(t, incumbent, "4")
	draft := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_1", mock.Anything).
		Return(true, nil).
		Once()

	got, err := s.uc.ActivateCampaign(ctx, port.ActivateReq{CampaignID: draft.ID, ProviderID: s.provider, PaymentMethodID: "pm_1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, "pm_1", got.PaymentMethodID)
	require.NotNil(t, got.ActivatedAt)
	// no bid yet, so no position
	assert.Nil(t, got.CurrentPosition)

	s.bid(t, got, "6")
	assert.Equal(t, 1, *s.get(t, draft.ID).CurrentPosition)
	assert.Equal(t, "4.01", s.get(t, draft.ID).ActualCPC.StringFixed(2))
	assert.Equal(t, 2, *s.get(t, incumbent.ID).CurrentPosition)
}

func TestActivateCampaign_WrongStateAndOwner(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	active := s.seed(t, nil)

	_, err := s.uc.ActivateCampaign(context.Background(), port.ActivateReq{CampaignID: active.ID, ProviderID: s.provider, PaymentMethodID: "pm"})
	require.ErrorIs(t, err, domain.ErrState)

	_, err = s.uc.ActivateCampaign(context.Background(), port.ActivateReq{CampaignID: active.ID, ProviderID: uuid.New(), PaymentMethodID: "pm"})
	require.ErrorIs(t, err, domain.ErrPermission)

	_, err = s.uc.ActivateCampaign(context.Background(), port.ActivateReq{CampaignID: uuid.New(), ProviderID: s.provider, PaymentMethodID: "pm"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceBid_PausedCampaignDoesNotResolve(t *testing.T) {
	// The publisher has no expectations: any pass with assignments would
	// fail the test.
	pub := mocks.NewMockEventPublisher(t)
	s := newSuite(t, pub, DefaultSettings())
	paused := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusPaused })

	_, err := s.uc.PlaceBid(context.Background(), port.PlaceBidReq{
		CampaignID: paused.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(5),
	})

	require.ErrorIs(t, err, domain.ErrState)
	got, err := s.uc.HighestActiveBid(context.Background(), paused.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlaceBid_Validation(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, nil)
	boost := s.seed(t, func(c *domain.Campaign) { c.AdType = domain.AdTypeQuickBoost })
	low := decimal.NewFromInt(1)

	tests := []struct {
		name string
		req  port.PlaceBidReq
		want error
	}{
		{"zero amount", port.PlaceBidReq{CampaignID: c.ID, ProviderID: s.provider}, domain.ErrValidation},
		{"negative amount", port.PlaceBidReq{CampaignID: c.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(-1)}, domain.ErrValidation},
		{"max below amount", port.PlaceBidReq{CampaignID: c.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(2), MaxBid: &low}, domain.ErrValidation},
		{"fixed price ad type", port.PlaceBidReq{CampaignID: boost.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(2)}, domain.ErrValidation},
		{"other provider", port.PlaceBidReq{CampaignID: c.ID, ProviderID: uuid.New(), Amount: decimal.NewFromInt(2)}, domain.ErrPermission},
		{"unknown campaign", port.PlaceBidReq{CampaignID: uuid.New(), ProviderID: s.provider, Amount: decimal.NewFromInt(2)}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.uc.PlaceBid(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
	assert.Nil(t, s.get(t, c.ID).CurrentPosition)
}

func TestPlaceBid_ResolvesScenario(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	a := s.seed(t, nil)
	b := s.seed(t, nil)
	c := s.seed(t, nil)

	s.bid(t, a, "10")
	s.bid(t, b, "8")
	placed := s.bid(t, c, "5")

	assert.Equal(t, domain.BidActive, placed.Status)
	assert.True(t, placed.MaxBid.Equal(placed.Amount))
	for i, want := range []struct {
		c     *domain.Campaign
		price string
	}{{a, "8.01"}, {b, "5.01"}, {c, "5.00"}} {
		got := s.get(t, want.c.ID)
		assert.Equal(t, i+1, *got.CurrentPosition)
		assert.Equal(t, want.price, got.ActualCPC.StringFixed(2))
	}
}

func TestPlaceBid_RepeatedBidIsStable(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	a := s.seed(t, nil)
	b := s.seed(t, nil)
	s.bid(t, a, "7")
	s.bid(t, b, "3")
	before := s.get(t, a.ID)

	s.bid(t, a, "7")

	after := s.get(t, a.ID)
	assert.Equal(t, *before.CurrentPosition, *after.CurrentPosition)
	assert.True(t, before.ActualCPC.Equal(*after.ActualCPC))
}

func TestPlaceBid_ConcurrentBidsKeepPositionsUnique(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	const n = 10
	campaigns := make([]*domain.Campaign, n)
	for i := range campaigns {
		campaigns[i] = s.seed(t, nil)
	}

	var wg sync.WaitGroup
	for i, c := range campaigns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc.PlaceBid(context.Background(), port.PlaceBidReq{
				CampaignID: c.ID,
				ProviderID: s.provider,
				Amount:     decimal.NewFromInt(int64(10 + i)),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for i, c := range campaigns {
		got := s.get(t, c.ID)
		require.NotNil(t, got.CurrentPosition)
		assert.False(t, seen[*got.CurrentPosition])
		seen[*got.CurrentPosition] = true
		assert.Equal(t, n-i, *got.CurrentPosition)
	}
}

func TestWithdrawBid(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	a := s.seed(t, nil)
	b := s.seed(t, nil)
	low := s.bid(t, a, "2")
	high := s.bid(t, a, "9")
	s.bid(t, b, "5")
	assert.Equal(t, 1, *s.get(t, a.ID).CurrentPosition)

	got, err := s.uc.WithdrawBid(ctx, high.ID, s.provider)
	require.NoError(t, err)
	assert.Equal(t, domain.BidWithdrawn, got.Status)
	assert.Equal(t, 2, *s.get(t, a.ID).CurrentPosition)
	assert.Equal(t, 1, *s.get(t, b.ID).CurrentPosition)

	_, err = s.uc.WithdrawBid(ctx, high.ID, s.provider)
	require.ErrorIs(t, err, domain.ErrState)

	_, err = s.uc.WithdrawBid(ctx, low.ID, uuid.New())
	require.ErrorIs(t, err, domain.ErrPermission)

	_, err = s.uc.WithdrawBid(ctx, low.ID, s.provider)
	require.NoError(t, err)
	assert.Nil(t, s.get(t, a.ID).CurrentPosition)
	assert.Nil(t, s.get(t, a.ID).ActualCPC)
	assert.Equal(t, "5.00", s.get(t, b.ID).ActualCPC.StringFixed(2))

	_, err = s.uc.WithdrawBid(ctx, uuid.New(), s.provider)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPauseAndResumeCampaign(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	a := s.seed(t, nil)
	b := s.seed(t, nil)
	s.bid(t, a, "10")
	s.bid(t, b, "8")

	paused, err := s.uc.PauseCampaign(ctx, a.ID, s.provider)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, paused.Status)
	assert.Nil(t, paused.CurrentPosition)
	assert.Nil(t, paused.ActualCPC)
	assert.Equal(t, 1, *s.get(t, b.ID).CurrentPosition)
	assert.Equal(t, "8.00", s.get(t, b.ID).ActualCPC.StringFixed(2))

	_, err = s.uc.PauseCampaign(ctx, a.ID, s.provider)
	require.ErrorIs(t, err, domain.ErrState)

	resumed, err := s.uc.ResumeCampaign(ctx, a.ID, s.provider)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, resumed.Status)
	assert.Equal(t, 1, *resumed.CurrentPosition)
	assert.Equal(t, 2, *s.get(t, b.ID).CurrentPosition)
}

func TestResumeCampaign_EndedCampaign(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, func(c *domain.Campaign) {
		c.Status = domain.StatusPaused
		c.EndDate = now.Add(-time.Hour)
	})

	_, err := s.uc.ResumeCampaign(context.Background(), c.ID, s.provider)

	require.ErrorIs(t, err, domain.ErrState)
}

func TestCancelAndCompleteCampaign(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	draft := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	active := s.seed(t, nil)
	paused := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusPaused })
	s.bid(t, active, "3")

	got, err := s.uc.CancelCampaign(ctx, draft.ID, s.provider)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	_, err = s.uc.CompleteCampaign(ctx, paused.ID, s.provider)
	require.ErrorIs(t, err, domain.ErrState)

	got, err = s.uc.CompleteCampaign(ctx, active.ID, s.provider)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Nil(t, got.CurrentPosition)

	_, err = s.uc.CancelCampaign(ctx, active.ID, s.provider)
	require.ErrorIs(t, err, domain.ErrState)
	_, err = s.uc.PlaceBid(ctx, port.PlaceBidReq{CampaignID: active.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, domain.ErrState)
}

func TestUpdateCampaign(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()

	t.Run("draft accepts every field", func(t *testing.T) {
		c := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
		name := "renamed"
		adType := domain.AdTypeTopSearch
		budget := decimal.NewFromInt(60)
		start := now.Add(2 * time.Hour)

		got, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{
			CampaignID: c.ID, ProviderID: s.provider,
			Name: &name, AdType: &adType, Budget: &budget, StartDate: &start,
		})

		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.Equal(t, domain.AdTypeTopSearch, got.AdType)
		assert.True(t, got.Budget.Equal(budget))
	})

	t.Run("active freezes name", func(t *testing.T) {
		c := s.seed(t, nil)
		name := "renamed"

		_, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: c.ID, ProviderID: s.provider, Name: &name})

		require.ErrorIs(t, err, domain.ErrState)
	})

	t.Run("budget below minimum", func(t *testing.T) {
		c := s.seed(t, nil)
		budget := decimal.NewFromInt(10)

		_, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: c.ID, ProviderID: s.provider, Budget: &budget})

		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("budget below spend", func(t *testing.T) {
		c := s.seed(t, nil)
		s.store.RecordTraffic(c.ID, metrics.Input{Spent: decimal.NewFromInt(40)})
		budget := decimal.NewFromInt(30)

		_, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: c.ID, ProviderID: s.provider, Budget: &budget})

		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateCampaign_TargetingChangeMovesSegment(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	mover := s.seed(t, nil)
	stayer := s.seed(t, nil)
	rival := s.seed(t, func(c *domain.Campaign) { c.Targeting.Category = "cleaning" })
	s.bid(t, mover, "9")
	s.bid(t, stayer, "4")
	s.bid(t, rival, "12")

	targeting := domain.Targeting{Category: "Cleaning"}
	got, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: mover.ID, ProviderID: s.provider, Targeting: &targeting})
	require.NoError(t, err)

	assert.Equal(t, "cleaning", got.Targeting.Category)
	assert.Equal(t, 2, *got.CurrentPosition)
	assert.Equal(t, "9.00", got.ActualCPC.StringFixed(2))
	assert.Equal(t, "9.01", s.get(t, rival.ID).ActualCPC.StringFixed(2))
	assert.Equal(t, 1, *s.get(t, stayer.ID).CurrentPosition)
	assert.Equal(t, "4.00", s.get(t, stayer.ID).ActualCPC.StringFixed(2))
}

// interleavedStore runs before once, ahead of the first campaign update, to
// let another operation slip in between a read and its write.
type interleavedStore struct {
	*memory.Store
	before func()
}

func (s *interleavedStore) UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error) {
	if f := s.before; f != nil {
		s.before = nil
		f()
	}
	return s.Store.UpdateCampaign(ctx, c)
}

func TestUpdateCampaign_ActivatedMeanwhile(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	rival := s.seed(t, nil)
	s.bid(t, rival, "5")
	draft := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_1", mock.Anything).
		Return(true, nil).
		Once()

	store := &interleavedStore{Store: s.store}
	uc := NewCampaignUseCase(store, s.store, s.payments, s.uc.resolver, DefaultSettings(), nil)
	uc.now = s.uc.now
	store.before = func() {
		_, err := s.uc.ActivateCampaign(ctx, port.ActivateReq{CampaignID: draft.ID, ProviderID: s.provider, PaymentMethodID: "pm_1"})
		require.NoError(t, err)
		s.bid(t, draft, "9")
	}

	adType := domain.AdTypeSponsored
	_, err := uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: draft.ID, ProviderID: s.provider, AdType: &adType})
	require.ErrorIs(t, err, domain.ErrState)

	got := s.get(t, draft.ID)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, domain.AdTypeBanner, got.AdType)
	require.NotNil(t, got.CurrentPosition)
	assert.Equal(t, 1, *got.CurrentPosition)
	assert.Equal(t, 2, *s.get(t, rival.ID).CurrentPosition)
}

func TestActivateCampaign_EditedDuringPaymentCheck(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	c := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	budget := decimal.NewFromInt(80)
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_1", amountOf("100")).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, _ string, _ decimal.Decimal) (bool, error) {
			_, err := s.uc.UpdateCampaign(ctx, port.UpdateCampaignReq{CampaignID: c.ID, ProviderID: s.provider, Budget: &budget})
			require.NoError(t, err)
			return true, nil
		}).
		Once()

	_, err := s.uc.ActivateCampaign(ctx, port.ActivateReq{CampaignID: c.ID, ProviderID: s.provider, PaymentMethodID: "pm_1"})

	require.ErrorIs(t, err, domain.ErrState)
	got := s.get(t, c.ID)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.True(t, got.Budget.Equal(budget))
}

func TestCreateQuickBoost(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	ctx := context.Background()
	req := port.QuickBoostReq{
		ProviderID:      s.provider,
		ServiceID:       uuid.New(),
		Hours:           24,
		Targeting:       domain.Targeting{Category: "plumbing"},
		PaymentMethodID: "pm_1",
	}
	s.payments.EXPECT().
		ValidatePaymentMethod(mock.Anything, s.provider, "pm_1", amountOf("5")).
		Return(true, nil).
		Once()

	c, err := s.uc.CreateQuickBoost(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, domain.AdTypeQuickBoost, c.AdType)
	assert.Equal(t, "5.00", c.Budget.StringFixed(2))
	assert.Equal(t, now.Add(24*time.Hour), c.EndDate)
	assert.Nil(t, c.CurrentPosition)

	_, err = s.uc.PlaceBid(ctx, port.PlaceBidReq{CampaignID: c.ID, ProviderID: s.provider, Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, domain.ErrValidation)

	for _, hours := range []int{0, 169} {
		req.Hours = hours
		_, err = s.uc.CreateQuickBoost(ctx, req)
		require.ErrorIs(t, err, domain.ErrValidation, "hours=%d", hours)
	}
}

func TestGetCampaignMetrics(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	c := s.seed(t, nil)
	s.store.RecordTraffic(c.ID, metrics.Input{
		Impressions: 1000, Clicks: 50, Leads: 5, Conversions: 2, Spent: decimal.NewFromInt(100),
	})

	m, err := s.uc.GetCampaignMetrics(context.Background(), c.ID, s.provider)

	require.NoError(t, err)
	assert.Equal(t, "0.0500", m.CTR.StringFixed(4))
	assert.Equal(t, "2.00", m.CPC.StringFixed(2))
	assert.Equal(t, "20.00", m.CPL.StringFixed(2))
	assert.Equal(t, "0.0400", m.ConversionRate.StringFixed(4))
	assert.Equal(t, "0.0000", m.ROI.StringFixed(4))

	_, err = s.uc.GetCampaignMetrics(context.Background(), c.ID, uuid.New())
	require.ErrorIs(t, err, domain.ErrPermission)
}

func TestGetAggregateStats(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	a := s.seed(t, nil)
	b := s.seed(t, func(c *domain.Campaign) { c.Status = domain.StatusPaused })
	s.seed(t, func(c *domain.Campaign) { c.ProviderID = uuid.New() })
	s.store.RecordTraffic(a.ID, metrics.Input{Impressions: 1000, Clicks: 50, Leads: 5, Conversions: 2, Spent: decimal.NewFromInt(100)})
	s.store.RecordTraffic(b.ID, metrics.Input{Impressions: 1000, Clicks: 30, Leads: 3, Conversions: 2, Spent: decimal.NewFromInt(60)})

	stats, err := s.uc.GetAggregateStats(context.Background(), s.provider)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCampaigns)
	assert.Equal(t, 1, stats.ActiveCampaigns)
	assert.Equal(t, "160.00", stats.TotalSpent.StringFixed(2))
	assert.Equal(t, "0.0400", stats.AverageCTR.StringFixed(4))
	assert.Equal(t, "2.00", stats.AverageCPC.StringFixed(2))
	assert.Equal(t, "20.00", stats.AverageCPL.StringFixed(2))
	assert.Equal(t, "0.2500", stats.ROI.StringFixed(4))
}

func TestGetAggregateStats_NoCampaigns(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())

	stats, err := s.uc.GetAggregateStats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalCampaigns)
	assert.True(t, stats.AverageCTR.IsZero())
	assert.True(t, stats.ROI.IsZero())
}

func TestResolveSegment(t *testing.T) {
	s := newSuite(t, nil, DefaultSettings())
	a := s.seed(t, nil)
	s.bid(t, a, "3")
	s.store.RecordTraffic(a.ID, metrics.Input{Impressions: 10, Clicks: 5})

	res, err := s.uc.ResolveSegment(context.Background(), domain.SegmentKey{AdType: domain.AdTypeBanner, Category: "plumbing"})
	require.NoError(t, err)
	require.Len(t, res.Assignments, 1)
	assert.Greater(t, res.Assignments[0].QualityScore, 0.3)

	_, err = s.uc.ResolveSegment(context.Background(), domain.SegmentKey{AdType: domain.AdTypeSponsored, Category: "plumbing"})
	require.ErrorIs(t, err, domain.ErrValidation)
}
