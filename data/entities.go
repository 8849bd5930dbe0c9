package data

import (
	"database/sql"
	"time"

	"github.com/gbpkcompany/brief.job/enums"
)

// DigestItem is one row eligible for inclusion in the daily brief,
// produced fresh on every run. News rows carry a null amount, currency
// and score.
type DigestItem struct {
	Date     time.Time       `db:"the_date"`
	Company  string          `db:"company_name"`
	Sector   sql.NullString  `db:"sector"`
	Category enums.Category  `db:"event_type"`
	Title    string          `db:"title"`
	Amount   sql.NullInt64   `db:"amount"`
	Currency sql.NullString  `db:"currency"`
	Source   string          `db:"source"`
	URL      sql.NullString  `db:"url"`
	Score    sql.NullFloat64 `db:"score"`
}
