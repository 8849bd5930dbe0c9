package enums

type Category string

const (
	// CategoryFunding marks a funding round. Funding events carry an
	// amount and currency alongside the title.
	CategoryFunding Category = "funding"

	// CategoryLaunch marks a product launch.
	CategoryLaunch Category = "launch"

	// CategoryRevenueMilestone marks a reported revenue milestone.
	CategoryRevenueMilestone Category = "revenue_milestone"

	// CategoryNews is the synthetic category assigned to news articles,
	// which have no amount and no relevance score.
	CategoryNews Category = "news"
)
