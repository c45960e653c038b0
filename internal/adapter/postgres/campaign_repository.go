package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/port"
)

const campaignColumns = `
	id, provider_id, service_id, name, ad_type, budget_type, budget, spent,
	current_position, actual_cpc, impressions, clicks, leads, conversions,
	status, start_date, end_date, category, location, creative,
	payment_method_id, activated_at, created_at, updated_at, version`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts a campaign.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	creative, err := json.Marshal(c.Creative)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`,
		c.ID, c.ProviderID, c.ServiceID, c.Name, string(c.AdType), string(c.BudgetType), c.Budget, c.Spent,
		c.CurrentPosition, nullDecimal(c.ActualCPC), c.Impressions, c.Clicks, c.Leads, c.Conversions,
		string(c.Status), c.StartDate, c.EndDate, c.Targeting.Category, c.Targeting.Location, creative,
		c.PaymentMethodID, c.ActivatedAt, c.CreatedAt, c.UpdatedAt, c.Version,
	)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaign stores the provider-editable fields if status and version
// are unchanged since c was read.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error) {
	creative, err := json.Marshal(c.Creative)
	if err != nil {
		return false, err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
			name = $2, ad_type = $3, budget_type = $4, budget = $5,
			start_date = $6, end_date = $7, category = $8, location = $9,
			creative = $10, updated_at = $11, version = version + 1
		WHERE id = $1 AND status = $12 AND version = $13`,
		c.ID, c.Name, string(c.AdType), string(c.BudgetType), c.Budget,
		c.StartDate, c.EndDate, c.Targeting.Category, c.Targeting.Location,
		creative, c.UpdatedAt, string(c.Status), c.Version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// TransitionStatus applies a conditional status change in one statement.
func (r *CampaignRepository) TransitionStatus(ctx context.Context, t port.StatusTransition) (bool, error) {
	from := make([]string, len(t.From))
	for i, s := range t.From {
		from[i] = string(s)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
			status = $2::text,
			updated_at = $3,
			payment_method_id = CASE WHEN $2::text = 'active' AND $4::text <> '' THEN $4::text ELSE payment_method_id END,
			activated_at = CASE WHEN $2::text = 'active' THEN COALESCE(activated_at, $3) ELSE activated_at END,
			current_position = CASE WHEN $2::text = 'active' THEN current_position END,
			actual_cpc = CASE WHEN $2::text = 'active' THEN actual_cpc END,
			version = version + 1
		WHERE id = $1 AND status = ANY($5::text[])
		  AND ($6::bigint IS NULL OR version = $6::bigint)`,
		t.CampaignID, string(t.To), t.At, t.PaymentMethodID, from, t.Version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListActiveCampaigns returns active campaigns of one ad type and category.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, adType domain.AdType, category string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE status = 'active' AND ad_type = $1 AND lower(category) = lower($2)
		ORDER BY created_at, id`, string(adType), category)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListProviderCampaigns returns all campaigns of a provider.
func (r *CampaignRepository) ListProviderCampaigns(ctx context.Context, providerID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE provider_id = $1 ORDER BY created_at, id`, providerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ApplyAssignments writes every assignment in one serializable transaction.
func (r *CampaignRepository) ApplyAssignments(ctx context.Context, assignments []domain.Assignment) (err error) {
	if len(assignments) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, a := range assignments {
		batch.Queue(`UPDATE campaigns SET current_position = $2, actual_cpc = $3 WHERE id = $1 AND status = 'active'`,
			a.CampaignID, a.Position, a.ActualCPC)
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// ClearAuctionState resets position and actual CPC.
func (r *CampaignRepository) ClearAuctionState(ctx context.Context, campaignID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET current_position = NULL, actual_cpc = NULL WHERE id = $1`, campaignID)
	return err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		adType    string
		budget    string
		status    string
		actualCPC decimal.NullDecimal
		creative  []byte
	)
	err := row.Scan(
		&c.ID,
		&c.ProviderID,
		&c.ServiceID,
		&c.Name,
		&adType,
		&budget,
		&c.Budget,
		&c.Spent,
		&c.CurrentPosition,
		&actualCPC,
		&c.Impressions,
		&c.Clicks,
		&c.Leads,
		&c.Conversions,
		&status,
		&c.StartDate,
		&c.EndDate,
		&c.Targeting.Category,
		&c.Targeting.Location,
		&creative,
		&c.PaymentMethodID,
		&c.ActivatedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Version,
	)
	if err != nil {
		return c, err
	}
	c.AdType = domain.AdType(adType)
	c.BudgetType = domain.BudgetType(budget)
	c.Status = domain.CampaignStatus(status)
	if actualCPC.Valid {
		c.ActualCPC = &actualCPC.Decimal
	}
	if len(creative) > 0 {
		if err = json.Unmarshal(creative, &c.Creative); err != nil {
			return c, fmt.Errorf("decode creative of campaign %s: %w", c.ID, err)
		}
	}
	return c, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
