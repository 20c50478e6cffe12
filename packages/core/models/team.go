package models

// TeamLevel is the self-reported competitive level of a team.
type TeamLevel string

const (
	LevelBeginner     TeamLevel = "beginner"
	LevelIntermediate TeamLevel = "intermediate"
	LevelAdvanced     TeamLevel = "advanced"
)

// AgeCategory buckets a team by the age of its players. Empty means unset.
type AgeCategory string

const (
	AgeU10     AgeCategory = "U-10"
	AgeU12     AgeCategory = "U-12"
	AgeU15     AgeCategory = "U-15"
	AgeGeneral AgeCategory = "general"
)

type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position"`
}

type Team struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	CoachName   string      `json:"coach_name"`
	LogoURL     string      `json:"logo_url"`
	Level       TeamLevel   `json:"level"`
	Rating      int         `json:"rating"`
	Rank        int         `json:"rank"` // derived, not authoritative
	Members     []Member    `json:"members"`
	Description string      `json:"description"`
	Prefecture  string      `json:"prefecture"`
	City        string      `json:"city"`
	AgeCategory AgeCategory `json:"age_category,omitempty"`
	// Free-text availability tag shown in matchmaking, e.g. "available".
	AvailableSlotsText string `json:"available_slots_text,omitempty"`
}

// FollowedTeam is a snapshot of a Team the operator tracks, plus a favorite
// flag. It is synced from the global team collection on demand, not live.
type FollowedTeam struct {
	Team
	IsFavorite bool `json:"is_favorite"`
}

// DTOs

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required"`
	CoachName string `json:"coach_name" binding:"required"`
}

type UpdateTeamRequest struct {
	Team Team `json:"team" binding:"required"`
}

type ToggleFollowRequest struct {
	Team Team `json:"team" binding:"required"`
}

// TeamRank reports a team's position by rating inside a cohort.
type TeamRank struct {
	Rank  int `json:"rank"`  // 1-based; 0 when the team is not in the cohort
	Total int `json:"total"` // cohort size
}

// TeamRankResponse groups the three rank cohorts shown on the team profile.
type TeamRankResponse struct {
	Overall     TeamRank  `json:"overall"`
	Prefecture  *TeamRank `json:"prefecture,omitempty"`   // nil when prefecture unset
	AgeCategory *TeamRank `json:"age_category,omitempty"` // nil when age category unset
}
