package models

// MatchmakingFilters narrows the team universe during opponent search. All
// filters compose as a conjunction; an empty/unset filter matches everything.
type MatchmakingFilters struct {
	Prefectures   []string      `json:"prefectures,omitempty"`
	Levels        []TeamLevel   `json:"levels,omitempty"`
	AgeCategories []AgeCategory `json:"age_categories,omitempty"`
	RatingMin     *int          `json:"rating_min,omitempty"`
	RatingMax     *int          `json:"rating_max,omitempty"`
	// When true, only teams currently advertising open slots are returned.
	AvailableOnly bool `json:"available_only,omitempty"`
}

// Availability tags treated as "open for a match" by the availability filter.
const (
	AvailabilityOpen         = "available"
	AvailabilityWeekendsOnly = "weekends_only"
)
