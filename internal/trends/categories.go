package trends

// Industry identifies one upstream industry filter: the display name, the
// numeric code the Creative Center uses for its dropdown filter, and the
// website category its results land in. Several industries share a website
// key, in which case their results accumulate into one bucket.
type Industry struct {
	Name       string
	FilterID   string
	WebsiteKey string
}

// Industries lists every upstream industry in the order API calls are
// issued. The empty FilterID on "All" requests the unfiltered view. Games
// deliberately shares the "tech" bucket with Tech & Electronics.
var Industries = []Industry{
	{Name: "All", FilterID: "", WebsiteKey: "general"},
	{Name: "Apparel & Accessories", FilterID: "2", WebsiteKey: "fashion"},
	{Name: "Beauty & Personal Care", FilterID: "3", WebsiteKey: "lifestyle"},
	{Name: "Education", FilterID: "6", WebsiteKey: "education"},
	{Name: "Financial Services", FilterID: "9", WebsiteKey: "business"},
	{Name: "Food & Beverage", FilterID: "15", WebsiteKey: "food"},
	{Name: "Games", FilterID: "18", WebsiteKey: "tech"},
	{Name: "Health", FilterID: "36", WebsiteKey: "fitness"},
	{Name: "Home Improvement", FilterID: "21", WebsiteKey: "home"},
	{Name: "News & Entertainment", FilterID: "24", WebsiteKey: "entertainment"},
	{Name: "Pets", FilterID: "28", WebsiteKey: "pets"},
	{Name: "Sports & Outdoor", FilterID: "31", WebsiteKey: "sports"},
	{Name: "Tech & Electronics", FilterID: "33", WebsiteKey: "tech"},
	{Name: "Travel", FilterID: "35", WebsiteKey: "travel"},
	{Name: "Vehicle & Transportation", FilterID: "37", WebsiteKey: "auto"},
}

// GeneralKey is the bucket holding unfiltered trending hashtags. The HTML
// tier only ever produces data for this bucket.
const GeneralKey = "general"
