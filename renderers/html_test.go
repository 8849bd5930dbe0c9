package renderers

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbpkcompany/brief.job/data"
	"github.com/gbpkcompany/brief.job/enums"
)

var testDay = time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

func testItem(category enums.Category) data.DigestItem {
	return data.DigestItem{
		Date:     testDay,
		Company:  "Acme",
		Category: category,
		Title:    "something happened",
		Source:   "TechCrunch",
	}
}

func TestDateHeading(t *testing.T) {
	assert.Equal(t, "Mar 14, 2025", DateHeading(testDay))
	assert.Equal(t, "Jan 02, 2026", DateHeading(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Daily GBPK Brief — Mar 14, 2025", Subject(testDay))
}

func TestDigest_EmptyItems(t *testing.T) {
	out := Digest(nil, testDay)

	assert.Equal(t, "<h2>Daily GBPK Brief — Mar 14, 2025</h2><p>No items today.</p>", out)
}

func TestDigest_HeadingAndWrapper(t *testing.T) {
	out := Digest([]data.DigestItem{testItem(enums.CategoryNews)}, testDay)

	assert.True(t, strings.HasPrefix(out, "<h2 style='font-family:Helvetica;'>Daily GBPK Brief — Mar 14, 2025</h2>"))
	assert.Contains(t, out, "<div style='font-family:Helvetica;line-height:1.6;'>")
	assert.True(t, strings.HasSuffix(out, "</div>"))
}

func TestDigest_OneParagraphPerItem(t *testing.T) {
	items := []data.DigestItem{
		testItem(enums.CategoryNews),
		testItem(enums.CategoryLaunch),
		testItem(enums.CategoryFunding),
	}

	out := Digest(items, testDay)

	assert.Equal(t, 3, strings.Count(out, "<p style='margin:6px 0;'>"))
}

func TestDigest_FundingWithAmount(t *testing.T) {
	item := testItem(enums.CategoryFunding)
	item.Title = "Acme raises Series B"
	item.Amount = sql.NullInt64{Int64: 1500000, Valid: true}
	item.Currency = sql.NullString{String: "USD", Valid: true}

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "💰 <b>Acme</b> raised $1,500,000 raises Series B")
	// The company name from the title must not be repeated.
	assert.Equal(t, 1, strings.Count(out, "Acme"))
}

func TestDigest_FundingWithoutAmountUsesNeutralPhrasing(t *testing.T) {
	item := testItem(enums.CategoryFunding)
	item.Title = "closed an undisclosed round"

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "💰 <b>Acme</b> closed an undisclosed round")
	assert.NotContains(t, out, "raised")
}

func TestDigest_LaunchPhrasing(t *testing.T) {
	item := testItem(enums.CategoryLaunch)
	item.Title = "its new analytics suite"

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "🚀 <b>Acme</b> launched its new analytics suite")
}

func TestDigest_RevenueMilestonePhrasing(t *testing.T) {
	item := testItem(enums.CategoryRevenueMilestone)
	item.Title = "$10M ARR"

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "📈 <b>Acme</b> reported $10M ARR")
}

func TestDigest_NewsMarker(t *testing.T) {
	item := testItem(enums.CategoryNews)
	item.Title = "featured in a market roundup"

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "🗞️ <b>Acme</b> featured in a market roundup")
}

func TestDigest_UnknownCategoryFallsBack(t *testing.T) {
	item := testItem(enums.Category("acquisition"))
	item.Title = "acquired a competitor"

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "✨ <b>Acme</b> acquired a competitor")
}

func TestDigest_SectorAppendedWhenPresent(t *testing.T) {
	item := testItem(enums.CategoryNews)
	item.Sector = sql.NullString{String: "fintech", Valid: true}

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "something happened (fintech)")
}

func TestDigest_SectorOmittedWhenAbsent(t *testing.T) {
	out := Digest([]data.DigestItem{testItem(enums.CategoryNews)}, testDay)

	assert.NotContains(t, out, "(")
}

func TestDigest_SourceWithURLIsLinked(t *testing.T) {
	item := testItem(enums.CategoryNews)
	item.URL = sql.NullString{String: "https://example.com/story", Valid: true}

	out := Digest([]data.DigestItem{item}, testDay)

	assert.Contains(t, out, "<a href='https://example.com/story' style='color:#0073e6;text-decoration:none;'>[TechCrunch]</a>")
}

func TestDigest_SourceWithoutURLIsPlainBrackets(t *testing.T) {
	out := Digest([]data.DigestItem{testItem(enums.CategoryNews)}, testDay)

	assert.Contains(t, out, " [TechCrunch]")
	assert.NotContains(t, out, "<a href")
}

func TestDigest_Deterministic(t *testing.T) {
	items := []data.DigestItem{
		testItem(enums.CategoryFunding),
		testItem(enums.CategoryNews),
		testItem(enums.Category("odd")),
	}

	first := Digest(items, testDay)
	second := Digest(items, testDay)

	assert.Equal(t, first, second)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,500,000", formatAmount(1500000))
	assert.Equal(t, "$500", formatAmount(500))
	assert.Equal(t, "$0", formatAmount(0))
	assert.Equal(t, "$12,000,000,000", formatAmount(12000000000))
}

func TestStripCompany(t *testing.T) {
	assert.Equal(t, "raises Series B", stripCompany("Acme raises Series B", "Acme"))
	assert.Equal(t, "raises Series B", stripCompany("raises Series B", "Acme"))
	require.Equal(t, "", stripCompany("Acme", "Acme"))
}
