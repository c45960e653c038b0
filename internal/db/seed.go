package db

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedNamespace derives stable ids so seeding twice does not duplicate rows.
var seedNamespace = uuid.MustParse("5f0b8c7e-4a55-4a57-9a0e-6f1ad0c2b9a1")

func seedID(kind string, i int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", kind, i)))
}

// Seed inserts demo listings, active banner campaigns with traffic and one
// bid per campaign. Positions are left empty; run a resolution pass to fill
// them.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	categories := []string{"plumbing", "cleaning", "electrical"}
	provider := seedID("provider", 1)

	for i := 1; i <= 9; i++ {
		serviceID := seedID("service", i)
		category := categories[(i-1)%len(categories)]
		tags := []string{category, "local"}
		_, err := db.Exec(ctx, `INSERT INTO service_listings (service_id, rating, image_count, description, tags)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
			serviceID, 3+r.Float64()*2, r.Intn(4), strings.Repeat("Reliable service. ", 2+r.Intn(8)), tags)
		if err != nil {
			return err
		}

		campaignID := seedID("campaign", i)
		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 1, 0)
		impressions := int64(500 + r.Intn(1500))
		clicks := impressions * int64(1+r.Intn(8)) / 100
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, provider_id, service_id, name, ad_type, budget_type, budget, spent,
     impressions, clicks, leads, conversions, status, start_date, end_date,
     category, payment_method_id, activated_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,'banner','total',100,$5,$6,$7,$8,$9,'active',$10,$11,$12,'pm_demo',now(),now(),now())
ON CONFLICT DO NOTHING`,
			campaignID, provider, serviceID, fmt.Sprintf("Campaign %d", i), clicks/2,
			impressions, clicks, clicks/5, clicks/10, start, end, category)
		if err != nil {
			return err
		}

		amount := fmt.Sprintf("%d.%02d", 1+r.Intn(9), r.Intn(100))
		_, err = db.Exec(ctx, `INSERT INTO bids (id, campaign_id, amount, max_bid, status, created_at)
VALUES ($1,$2,$3::numeric,$3::numeric,'active',now()) ON CONFLICT DO NOTHING`,
			seedID("bid", i), campaignID, amount)
		if err != nil {
			return err
		}
	}
	return nil
}
