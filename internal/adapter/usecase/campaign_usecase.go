package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/metrics"
	"promo-auction/internal/core/port"
)

// Settings holds the business constants of the lifecycle manager.
type Settings struct {
	// QuickBoostBudget is the fixed total budget of a quick boost.
	QuickBoostBudget decimal.Decimal
	// MaxQuickBoostHours caps the duration of a quick boost.
	MaxQuickBoostHours int
	// PaymentTimeout bounds payment method validation.
	PaymentTimeout time.Duration
	// ConversionValue is the revenue assumed per conversion for ROI.
	ConversionValue decimal.Decimal
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		QuickBoostBudget:   decimal.NewFromInt(5),
		MaxQuickBoostHours: 7 * 24,
		PaymentTimeout:     3 * time.Second,
		ConversionValue:    decimal.NewFromInt(50),
	}
}

// CampaignUseCase implements port.CampaignUseCase. It owns the campaign
// state machine and the bid ledger and hands every change of a segment's
// membership to the resolver.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	bids      port.BidRepository
	payments  port.PaymentValidator
	resolver  port.AuctionResolver
	calc      metrics.Calculator
	settings  Settings
	logger    *slog.Logger
	now       func() time.Time
}

// NewCampaignUseCase wires the use case.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	bids port.BidRepository,
	payments port.PaymentValidator,
	resolver port.AuctionResolver,
	settings Settings,
	logger *slog.Logger,
) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		campaigns: campaigns,
		bids:      bids,
		payments:  payments,
		resolver:  resolver,
		calc:      metrics.NewCalculator(settings.ConversionValue),
		settings:  settings,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateCampaign validates req and stores a draft campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	now := u.now()
	if req.ProviderID == uuid.Nil {
		return nil, domain.Invalid("provider_id", "is required")
	}
	if req.ServiceID == uuid.Nil {
		return nil, domain.Invalid("service_id", "is required")
	}
	if req.AdType == domain.AdTypeQuickBoost {
		return nil, domain.Invalid("ad_type", "quick-boost campaigns are created through the quick boost endpoint")
	}
	if req.BudgetType == "" {
		req.BudgetType = domain.BudgetTotal
	}
	c := &domain.Campaign{
		ID:         uuid.New(),
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Name:       strings.TrimSpace(req.Name),
		AdType:     req.AdType,
		BudgetType: req.BudgetType,
		Budget:     req.Budget,
		Spent:      decimal.Zero,
		Status:     domain.StatusDraft,
		StartDate:  req.StartDate.UTC(),
		EndDate:    req.EndDate.UTC(),
		Targeting:  req.Targeting.Normalize(),
		Creative:   req.Creative,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	if !c.StartDate.After(now) {
		return nil, domain.Invalid("start_date", "must be in the future")
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	u.logger.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("ad_type", string(c.AdType)),
	)
	return c, nil
}

// CreateQuickBoost creates an active quick-boost campaign.
func (u *CampaignUseCase) CreateQuickBoost(ctx context.Context, req port.QuickBoostReq) (*domain.Campaign, error) {
	if req.ProviderID == uuid.Nil {
		return nil, domain.Invalid("provider_id", "is required")
	}
	if req.ServiceID == uuid.Nil {
		return nil, domain.Invalid("service_id", "is required")
	}
	if req.Hours < 1 || req.Hours > u.settings.MaxQuickBoostHours {
		return nil, domain.Invalid("hours", "must be between 1 and %d", u.settings.MaxQuickBoostHours)
	}
	if strings.TrimSpace(req.PaymentMethodID) == "" {
		return nil, domain.Invalid("payment_method_id", "is required")
	}
	budget := u.settings.QuickBoostBudget
	if budget.LessThan(domain.AdTypeQuickBoost.MinimumBudget()) {
		budget = domain.AdTypeQuickBoost.MinimumBudget()
	}
	if err := u.validatePayment(ctx, req.ProviderID, req.PaymentMethodID, budget); err != nil {
		return nil, err
	}

	now := u.now()
	c := &domain.Campaign{
		ID:              uuid.New(),
		ProviderID:      req.ProviderID,
		ServiceID:       req.ServiceID,
		Name:            "Quick boost",
		AdType:          domain.AdTypeQuickBoost,
		BudgetType:      domain.BudgetTotal,
		Budget:          budget,
		Spent:           decimal.Zero,
		Status:          domain.StatusActive,
		StartDate:       now,
		EndDate:         now.Add(time.Duration(req.Hours) * time.Hour),
		Targeting:       req.Targeting.Normalize(),
		Creative:        req.Creative,
		PaymentMethodID: req.PaymentMethodID,
		ActivatedAt:     &now,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create quick boost: %w", err)
	}
	u.logger.InfoContext(ctx, "quick boost created",
		slog.String("campaign_id", c.ID.String()),
		slog.Int("hours", req.Hours),
	)
	return c, nil
}

// ActivateCampaign moves a draft campaign to active.
func (u *CampaignUseCase) ActivateCampaign(ctx context.Context, req port.ActivateReq) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, req.CampaignID, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: cannot activate a %s campaign", domain.ErrState, c.Status)
	}
	if err = validateCampaign(c); err != nil {
		return nil, err
	}
	if !c.EndDate.After(u.now()) {
		return nil, domain.Invalid("end_date", "has already passed")
	}
	if strings.TrimSpace(req.PaymentMethodID) == "" {
		return nil, domain.Invalid("payment_method_id", "is required")
	}
	if err = u.validatePayment(ctx, c.ProviderID, req.PaymentMethodID, c.Budget); err != nil {
		return nil, err
	}

	// The payment check ran on this snapshot, so an edit made meanwhile
	// fails the activation instead of going live unchecked.
	activate := func(ctx context.Context) error {
		return u.transition(ctx, port.StatusTransition{
			CampaignID:      c.ID,
			From:            []domain.CampaignStatus{domain.StatusDraft},
			To:              domain.StatusActive,
			At:              u.now(),
			PaymentMethodID: req.PaymentMethodID,
			Version:         &c.Version,
		})
	}
	if c.AdType.AuctionEligible() {
		_, err = u.resolver.WithSegment(ctx, u.resolver.SegmentOf(c), activate)
	} else {
		err = activate(ctx)
	}
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign activated", slog.String("campaign_id", c.ID.String()))
	return u.reload(ctx, c.ID)
}

// PauseCampaign moves an active campaign to paused.
func (u *CampaignUseCase) PauseCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, campaignID, providerID, domain.StatusPaused, domain.StatusActive)
}

// ResumeCampaign moves a paused campaign back to active.
func (u *CampaignUseCase) ResumeCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, campaignID, providerID, domain.StatusActive, domain.StatusPaused)
}

// CancelCampaign ends a draft, active or paused campaign.
func (u *CampaignUseCase) CancelCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, campaignID, providerID, domain.StatusCancelled,
		domain.StatusDraft, domain.StatusActive, domain.StatusPaused)
}

// CompleteCampaign ends an active campaign.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	return u.changeStatus(ctx, campaignID, providerID, domain.StatusCompleted, domain.StatusActive)
}

// changeStatus applies a transition that does not need payment checks. If
// the campaign enters or leaves an auction its segment is re-ranked in the
// same critical section.
func (u *CampaignUseCase) changeStatus(ctx context.Context, campaignID, providerID uuid.UUID, to domain.CampaignStatus, from ...domain.CampaignStatus) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, campaignID, providerID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(from, c.Status) {
		return nil, fmt.Errorf("%w: cannot move a %s campaign to %s", domain.ErrState, c.Status, to)
	}
	if to == domain.StatusActive && !c.EndDate.After(u.now()) {
		return nil, fmt.Errorf("%w: campaign ended on %s", domain.ErrState, c.EndDate.Format(time.RFC3339))
	}

	apply := func(ctx context.Context) error {
		return u.transition(ctx, port.StatusTransition{CampaignID: c.ID, From: from, To: to, At: u.now()})
	}
	competes := c.AdType.AuctionEligible() && (c.Status == domain.StatusActive || to == domain.StatusActive)
	if competes {
		_, err = u.resolver.WithSegment(ctx, u.resolver.SegmentOf(c), apply)
	} else {
		err = apply(ctx)
	}
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign status changed",
		slog.String("campaign_id", c.ID.String()),
		slog.String("from", string(c.Status)),
		slog.String("to", string(to)),
	)
	return u.reload(ctx, c.ID)
}

// UpdateCampaign edits the campaign fields present in req.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, req.CampaignID, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, fmt.Errorf("%w: cannot edit a %s campaign", domain.ErrState, c.Status)
	}
	if c.Status != domain.StatusDraft {
		switch {
		case req.Name != nil:
			return nil, frozen("name", c.Status)
		case req.AdType != nil:
			return nil, frozen("ad_type", c.Status)
		case req.BudgetType != nil:
			return nil, frozen("budget_type", c.Status)
		case req.StartDate != nil:
			return nil, frozen("start_date", c.Status)
		}
	}

	oldKey := u.resolver.SegmentOf(c)
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.AdType != nil {
		if *req.AdType == domain.AdTypeQuickBoost {
			return nil, domain.Invalid("ad_type", "cannot convert a campaign into a quick boost")
		}
		c.AdType = *req.AdType
	}
	if req.BudgetType != nil {
		c.BudgetType = *req.BudgetType
	}
	if req.Budget != nil {
		c.Budget = *req.Budget
	}
	if req.StartDate != nil {
		c.StartDate = req.StartDate.UTC()
		if !c.StartDate.After(u.now()) {
			return nil, domain.Invalid("start_date", "must be in the future")
		}
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate.UTC()
	}
	if req.Targeting != nil {
		c.Targeting = req.Targeting.Normalize()
	}
	if req.Creative != nil {
		c.Creative = *req.Creative
	}
	if err = validateCampaign(c); err != nil {
		return nil, err
	}
	if c.Budget.LessThan(c.Spent) {
		return nil, domain.Invalid("budget", "cannot be lower than the amount already spent (%s)", c.Spent.StringFixed(2))
	}
	c.UpdatedAt = u.now()

	update := func(ctx context.Context) error {
		ok, err := u.campaigns.UpdateCampaign(ctx, c)
		if err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: campaign changed concurrently", domain.ErrState)
		}
		return nil
	}
	newKey := u.resolver.SegmentOf(c)
	if c.Status != domain.StatusActive || oldKey == newKey || !c.AdType.AuctionEligible() {
		if err = update(ctx); err != nil {
			return nil, err
		}
		return u.reload(ctx, c.ID)
	}

	// The campaign moves between segments: leave the old one, then join
	// the new one. Each segment is locked on its own to avoid lock ordering.
	_, err = u.resolver.WithSegment(ctx, oldKey, func(ctx context.Context) error {
		if err := update(ctx); err != nil {
			return err
		}
		return u.campaigns.ClearAuctionState(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}
	if _, err = u.resolver.Resolve(ctx, newKey); err != nil {
		return nil, err
	}
	return u.reload(ctx, c.ID)
}

// GetCampaign returns a campaign owned by providerID.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	return u.ownedCampaign(ctx, campaignID, providerID)
}

// ListProviderCampaigns returns every campaign of providerID.
func (u *CampaignUseCase) ListProviderCampaigns(ctx context.Context, providerID uuid.UUID) ([]domain.Campaign, error) {
	cs, err := u.campaigns.ListProviderCampaigns(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return cs, nil
}

// PlaceBid appends a bid and re-ranks the segment.
func (u *CampaignUseCase) PlaceBid(ctx context.Context, req port.PlaceBidReq) (*domain.Bid, error) {
	if !req.Amount.IsPositive() {
		return nil, domain.Invalid("bid_amount", "must be greater than zero")
	}
	if req.TargetPosition < 0 {
		return nil, domain.Invalid("target_position", "must not be negative")
	}
	maxBid := req.Amount
	if req.MaxBid != nil {
		if req.MaxBid.LessThan(req.Amount) {
			return nil, domain.Invalid("max_bid", "must not be lower than bid_amount")
		}
		maxBid = *req.MaxBid
	}

	c, err := u.ownedCampaign(ctx, req.CampaignID, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !c.AdType.AuctionEligible() {
		return nil, domain.Invalid("ad_type", "%s campaigns are fixed price and do not accept bids", c.AdType)
	}
	if c.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: cannot bid on a %s campaign", domain.ErrState, c.Status)
	}

	bid := &domain.Bid{
		ID:             uuid.New(),
		CampaignID:     c.ID,
		Amount:         req.Amount,
		TargetPosition: req.TargetPosition,
		AutoBid:        req.AutoBid,
		MaxBid:         maxBid,
		Status:         domain.BidActive,
	}
	_, err = u.resolver.WithSegment(ctx, u.resolver.SegmentOf(c), func(ctx context.Context) error {
		// The campaign may have been paused while waiting for the segment.
		cur, err := u.campaigns.GetCampaign(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("get campaign: %w", err)
		}
		if cur == nil || cur.Status != domain.StatusActive {
			return fmt.Errorf("%w: campaign is no longer active", domain.ErrState)
		}
		bid.CreatedAt = u.now()
		if err := u.bids.CreateBid(ctx, bid); err != nil {
			return fmt.Errorf("create bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "bid placed",
		slog.String("campaign_id", c.ID.String()),
		slog.String("bid_id", bid.ID.String()),
		slog.String("amount", bid.Amount.String()),
	)
	return bid, nil
}

// WithdrawBid withdraws an active bid and re-ranks the segment. A campaign
// left without active bids loses its position.
func (u *CampaignUseCase) WithdrawBid(ctx context.Context, bidID, providerID uuid.UUID) (*domain.Bid, error) {
	bid, err := u.bids.GetBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("get bid: %w", err)
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: bid %s", domain.ErrNotFound, bidID)
	}
	c, err := u.ownedCampaign(ctx, bid.CampaignID, providerID)
	if err != nil {
		return nil, err
	}
	if bid.Status != domain.BidActive {
		return nil, fmt.Errorf("%w: bid is already %s", domain.ErrState, bid.Status)
	}

	withdraw := func(ctx context.Context) error {
		ok, err := u.bids.WithdrawBid(ctx, bid.ID)
		if err != nil {
			return fmt.Errorf("withdraw bid: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: bid is no longer active", domain.ErrState)
		}
		remaining, err := u.bids.HighestActiveBids(ctx, []uuid.UUID{c.ID})
		if err != nil {
			return fmt.Errorf("load bids: %w", err)
		}
		if _, ok := remaining[c.ID]; !ok {
			return u.campaigns.ClearAuctionState(ctx, c.ID)
		}
		return nil
	}
	if c.Competes() {
		_, err = u.resolver.WithSegment(ctx, u.resolver.SegmentOf(c), withdraw)
	} else {
		err = withdraw(ctx)
	}
	if err != nil {
		return nil, err
	}
	bid.Status = domain.BidWithdrawn
	return bid, nil
}

// HighestActiveBid returns the effective bid of a campaign or nil.
func (u *CampaignUseCase) HighestActiveBid(ctx context.Context, campaignID uuid.UUID) (*domain.Bid, error) {
	highest, err := u.bids.HighestActiveBids(ctx, []uuid.UUID{campaignID})
	if err != nil {
		return nil, fmt.Errorf("load bids: %w", err)
	}
	b, ok := highest[campaignID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// GetCampaignMetrics derives KPIs for one campaign.
func (u *CampaignUseCase) GetCampaignMetrics(ctx context.Context, campaignID, providerID uuid.UUID) (*metrics.Metrics, error) {
	c, err := u.ownedCampaign(ctx, campaignID, providerID)
	if err != nil {
		return nil, err
	}
	m := u.calc.Compute(metricsInput(c))
	return &m, nil
}

// GetAggregateStats summarises every campaign of a provider.
func (u *CampaignUseCase) GetAggregateStats(ctx context.Context, providerID uuid.UUID) (*port.AggregateStats, error) {
	cs, err := u.campaigns.ListProviderCampaigns(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	var (
		total  = metrics.Input{Spent: decimal.Zero}
		active int
	)
	for i := range cs {
		total = total.Add(metricsInput(&cs[i]))
		if cs[i].Status == domain.StatusActive {
			active++
		}
	}
	m := u.calc.Compute(total)
	return &port.AggregateStats{
		TotalCampaigns:  len(cs),
		ActiveCampaigns: active,
		TotalSpent:      total.Spent.Round(metrics.MoneyPrecision),
		AverageCTR:      m.CTR,
		AverageCPC:      m.CPC,
		AverageCPL:      m.CPL,
		ROI:             m.ROI,
	}, nil
}

// ResolveSegment re-ranks key on demand.
func (u *CampaignUseCase) ResolveSegment(ctx context.Context, key domain.SegmentKey) (*domain.Resolution, error) {
	if !key.AdType.AuctionEligible() {
		return nil, domain.Invalid("ad_type", "%q is not auction eligible", key.AdType)
	}
	// Rebuild the key the way campaigns are keyed so callers cannot name a
	// segment no campaign can belong to.
	key = u.resolver.SegmentOf(&domain.Campaign{
		AdType:    key.AdType,
		Targeting: domain.Targeting{Category: key.Category, Location: key.Location},
	})
	if key.Category == "" {
		return nil, domain.Invalid("category", "is required")
	}
	return u.resolver.Resolve(ctx, key)
}

// validatePayment calls the payment collaborator with a bounded timeout.
// Every failure, including a timeout, is an activation error.
func (u *CampaignUseCase) validatePayment(ctx context.Context, providerID uuid.UUID, paymentMethodID string, amount decimal.Decimal) error {
	if u.payments == nil {
		return fmt.Errorf("%w: payment validation is not configured", domain.ErrActivation)
	}
	if u.settings.PaymentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.settings.PaymentTimeout)
		defer cancel()
	}
	ok, err := u.payments.ValidatePaymentMethod(ctx, providerID, paymentMethodID, amount)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: payment validation timed out", domain.ErrActivation)
	case err != nil:
		u.logger.WarnContext(ctx, "payment validation error", slog.Any("error", err))
		return fmt.Errorf("%w: payment validation failed: %v", domain.ErrActivation, err)
	case !ok:
		return fmt.Errorf("%w: payment method %s cannot cover %s", domain.ErrActivation, paymentMethodID, amount.StringFixed(2))
	}
	return nil
}

func (u *CampaignUseCase) transition(ctx context.Context, t port.StatusTransition) error {
	ok, err := u.campaigns.TransitionStatus(ctx, t)
	if err != nil {
		return fmt.Errorf("transition campaign: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: campaign status changed concurrently", domain.ErrState)
	}
	return nil
}

func (u *CampaignUseCase) ownedCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	if !c.OwnedBy(providerID) {
		return nil, fmt.Errorf("%w: campaign %s belongs to another provider", domain.ErrPermission, campaignID)
	}
	return c, nil
}

func (u *CampaignUseCase) reload(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	return c, nil
}

// validateCampaign checks the invariants shared by creation, editing and
// activation.
func validateCampaign(c *domain.Campaign) error {
	if !c.AdType.Valid() {
		return domain.Invalid("ad_type", "unknown ad type %q", c.AdType)
	}
	if !c.BudgetType.Valid() {
		return domain.Invalid("budget_type", "unknown budget type %q", c.BudgetType)
	}
	if floor := c.AdType.MinimumBudget(); c.Budget.LessThan(floor) {
		return domain.Invalid("budget", "must be at least %s for %s campaigns", floor.StringFixed(2), c.AdType)
	}
	if c.StartDate.IsZero() {
		return domain.Invalid("start_date", "is required")
	}
	if !c.EndDate.After(c.StartDate) {
		return domain.Invalid("end_date", "must be after start_date")
	}
	if c.AdType.AuctionEligible() && c.Targeting.Category == "" {
		return domain.Invalid("targeting.category", "is required for %s campaigns", c.AdType)
	}
	return nil
}

func frozen(field string, status domain.CampaignStatus) error {
	return fmt.Errorf("%w: %s cannot change while the campaign is %s", domain.ErrState, field, status)
}

func metricsInput(c *domain.Campaign) metrics.Input {
	return metrics.Input{
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		Leads:       c.Leads,
		Conversions: c.Conversions,
		Spent:       c.Spent,
	}
}
