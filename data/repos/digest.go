package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/gbpkcompany/brief.job/data"
)

type DigestRepo struct {
	db *sqlx.DB
}

func NewDigestRepo(db *sqlx.DB) *DigestRepo {
	return &DigestRepo{db}
}

// GetItemsForDate returns the ranked digest for the given day: company
// events and news articles dated that day, combined, ordered by score
// desc (nulls last), date desc, company asc, and cut to data.MaxItems.
// The day is an explicit parameter so runs are reproducible against a
// fixed date. A query failure propagates; it is never collapsed into
// an empty digest, because "no items today" and "couldn't check" mean
// different things to the recipient.
func (r *DigestRepo) GetItemsForDate(day time.Time) ([]data.DigestItem, error) {
	query := `
		WITH todays_events AS (
			SELECT e.event_date::date AS the_date, c.name AS company_name, c.sector,
			       e.event_type, e.title, e.amount, e.currency,
			       e.source, e.source_url AS url, e.score
			FROM events e
			JOIN companies c ON c.id = e.company_id
			WHERE e.event_date::date = $1::date
		),
		todays_news AS (
			SELECT n.published_at::date AS the_date, c.name AS company_name, c.sector,
			       'news' AS event_type, n.headline AS title,
			       NULL::bigint AS amount, NULL::text AS currency,
			       n.source, n.url, NULL::double precision AS score
			FROM news_articles n
			JOIN companies c ON c.id = n.company_id
			WHERE n.published_at::date = $1::date
		)
		SELECT the_date, company_name, sector, event_type, title,
		       amount, currency, source, url, score
		FROM todays_events
		UNION ALL
		SELECT the_date, company_name, sector, event_type, title,
		       amount, currency, source, url, score
		FROM todays_news`

	var items []data.DigestItem
	err := r.db.Select(&items, query, day.Format("2006-01-02"))
	if err != nil {
		return nil, errors.Wrap(err, "get digest items")
	}

	return data.Rank(items), nil
}
