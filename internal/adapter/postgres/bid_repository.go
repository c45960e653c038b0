package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-auction/internal/core/domain"
)

const bidColumns = `id, campaign_id, amount, target_position, auto_bid, max_bid, status, created_at`

// BidRepository implements port.BidRepository using pgxpool.
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository returns a new repository instance.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

// CreateBid appends a bid.
func (r *BidRepository) CreateBid(ctx context.Context, b *domain.Bid) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO bids (`+bidColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		b.ID, b.CampaignID, b.Amount, b.TargetPosition, b.AutoBid, b.MaxBid, string(b.Status), b.CreatedAt)
	return err
}

// GetBid returns a bid by id.
func (r *BidRepository) GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBid)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// WithdrawBid marks an active bid withdrawn.
func (r *BidRepository) WithdrawBid(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE bids SET status = 'withdrawn' WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// HighestActiveBids picks one bid per campaign with DISTINCT ON, ordered
// the same way domain.Bid.Higher orders bids.
func (r *BidRepository) HighestActiveBids(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]domain.Bid, error) {
	if len(campaignIDs) == 0 {
		return map[uuid.UUID]domain.Bid{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT ON (campaign_id) `+bidColumns+` FROM bids
		WHERE campaign_id = ANY($1) AND status = 'active'
		ORDER BY campaign_id, amount DESC, created_at ASC`, campaignIDs)
	if err != nil {
		return nil, err
	}
	bids, err := pgx.CollectRows(rows, scanBid)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]domain.Bid, len(bids))
	for _, b := range bids {
		out[b.CampaignID] = b
	}
	return out, nil
}

func scanBid(row pgx.CollectableRow) (domain.Bid, error) {
	var (
		b      domain.Bid
		status string
	)
	err := row.Scan(&b.ID, &b.CampaignID, &b.Amount, &b.TargetPosition, &b.AutoBid, &b.MaxBid, &status, &b.CreatedAt)
	b.Status = domain.BidStatus(status)
	return b, err
}
