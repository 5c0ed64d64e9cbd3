package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedProfile shapes the random walk of one demo campaign so that every
// classification shows up in a fresh database.
type seedProfile struct {
	name   string
	margin float64 // mean revenue/spend ratio
	trend  float64 // daily change of the margin
}

var seedProfiles = []seedProfile{
	{name: "Brand search", margin: 1.45, trend: 0},
	{name: "Spring sale_Re", margin: 0.92, trend: -0.01},
	{name: "Retargeting display", margin: 1.10, trend: -0.02},
	{name: "Lookalike video", margin: 0.80, trend: 0},
	{name: "Newsletter promo", margin: 1.25, trend: 0.01},
}

var seedChannels = []string{"search", "display", "social", "video"}

// Seed inserts demo campaigns and days of daily records ending today into
// the mesa-judge database. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, days int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	batch := &pgx.Batch{}
	for i, p := range seedProfiles {
		key := fmt.Sprintf("cmp-%03d", i+1)
		batch.Queue(`INSERT INTO campaigns (key, display_name, media_channel)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, key, p.name, seedChannels[i%len(seedChannels)])

		for d := days - 1; d >= 0; d-- {
			date := today.AddDate(0, 0, -d)
			spend := 20000 + r.Float64()*30000
			margin := p.margin + p.trend*float64(days-d) + (r.Float64()-0.5)*0.2
			revenue := spend * margin
			cv := float64(r.Intn(40))
			mcv := cv*3 + float64(r.Intn(50))
			batch.Queue(`INSERT INTO daily_records (campaign_key, date, spend, revenue, cv, mcv)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
				key, date.Format(time.DateOnly), spend, revenue, cv, mcv)
		}
	}
	return db.SendBatch(ctx, batch).Close()
}
