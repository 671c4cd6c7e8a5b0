package trends

// fallbackCategories fixes the iteration order for per-category fills so
// diagnostic output stays deterministic across runs.
var fallbackCategories = []string{
	"general",
	"fitness",
	"food",
	"lifestyle",
	"fashion",
	"tech",
	"travel",
	"business",
}

// fallbackTable is the curated last-resort dataset. These sets are broadly
// evergreen; the scrape tiers exist to keep them fresh, not correct.
var fallbackTable = map[string][]string{
	"general": {
		"#fyp", "#foryou", "#viral", "#trending", "#foryoupage",
		"#tiktok", "#xyzbca", "#tiktokviral", "#viralvideo", "#fypシ",
	},
	"fitness": {
		"#fitness", "#workout", "#gym", "#fitfam", "#healthylifestyle",
		"#weightloss", "#fitnessmotivation", "#health", "#wellness",
		"#fittok", "#gymtok", "#motivation",
	},
	"food": {
		"#food", "#foodie", "#cooking", "#recipe", "#foodtok",
		"#baking", "#chef", "#foodporn", "#homecooking", "#easyrecipe",
		"#cookingtiktok", "#yummy",
	},
	"lifestyle": {
		"#beauty", "#makeup", "#skincare", "#beautytips", "#makeuptutorial",
		"#beautytok", "#skincareroutine", "#grwm", "#beautyhacks",
		"#skintok", "#makeupartist",
	},
	"fashion": {
		"#fashion", "#style", "#ootd", "#outfit", "#streetstyle",
		"#fashiontok", "#fashioninspo", "#outfitinspo", "#styleinspo",
		"#fashiontrends", "#fashionblogger",
	},
	"tech": {
		"#tech", "#technology", "#gaming", "#gamer", "#ai",
		"#techtok", "#gamedev", "#pc", "#gamingsetup", "#techreview",
		"#esports", "#twitch",
	},
	"travel": {
		"#travel", "#traveltok", "#adventure", "#wanderlust", "#vacation",
		"#explore", "#traveling", "#travelgram", "#travelphotography",
		"#travelblogger", "#travelvlog",
	},
	"business": {
		"#business", "#entrepreneur", "#marketing", "#money", "#investing",
		"#financetok", "#businesstips", "#hustle", "#stocks",
		"#entrepreneurship", "#sidehustle", "#moneytok",
	},
}

// FallbackCategories returns the category keys covered by the fallback
// table in fill order.
func FallbackCategories() []string {
	out := make([]string, len(fallbackCategories))
	copy(out, fallbackCategories)
	return out
}

// FallbackTags returns a copy of the curated list for one category, or nil
// if the category is not covered.
func FallbackTags(key string) []string {
	tags, ok := fallbackTable[key]
	if !ok {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// FallbackDataset returns a deep copy of the whole fallback table. Callers
// own the result and may mutate it freely.
func FallbackDataset() Dataset {
	data := make(Dataset, len(fallbackTable))
	for _, key := range fallbackCategories {
		data[key] = FallbackTags(key)
	}
	return data
}
