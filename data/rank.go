package data

import "sort"

// MaxItems is the hard cap on digest size per run.
const MaxItems = 12

// Rank orders the combined event and news rows by descending score
// (missing score sorts last), then descending date, then ascending
// company name, and truncates to MaxItems. The sort is stable, so
// identical input always produces identical output. Ranking must run
// over the combined set: twelve high-scoring events crowd out all
// news, and vice versa.
func Rank(items []DigestItem) []DigestItem {
	sort.SliceStable(items, func(i, j int) bool {
		return itemLess(items[i], items[j])
	})
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}

func itemLess(a, b DigestItem) bool {
	if a.Score.Valid != b.Score.Valid {
		return a.Score.Valid
	}
	if a.Score.Valid && a.Score.Float64 != b.Score.Float64 {
		return a.Score.Float64 > b.Score.Float64
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.Company < b.Company
}
