package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-auction/internal/core/domain"
)

// ListingReader reads quality signals from the service_listings table
// maintained by the listing service.
type ListingReader struct {
	pool *pgxpool.Pool
}

func NewListingReader(pool *pgxpool.Pool) *ListingReader {
	return &ListingReader{pool: pool}
}

// GetListings returns listing signals keyed by service id.
func (r *ListingReader) GetListings(ctx context.Context, serviceIDs []uuid.UUID) (map[uuid.UUID]domain.Listing, error) {
	out := make(map[uuid.UUID]domain.Listing, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT service_id, rating::float8, image_count,
		       char_length(coalesce(description, '')), coalesce(cardinality(tags), 0)
		FROM service_listings
		WHERE service_id = ANY($1)`, serviceIDs)
	if err != nil {
		return nil, err
	}
	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Listing, error) {
		var l domain.Listing
		err := row.Scan(&l.ServiceID, &l.Rating, &l.ImageCount, &l.DescriptionLength, &l.TagCount)
		return l, err
	})
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		out[l.ServiceID] = l
	}
	return out, nil
}
