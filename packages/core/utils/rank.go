package utils

import (
	"sort"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// RankByRating returns a team's 1-based position among the given cohort when
// sorted by rating descending, and the cohort size. Rank 0 means the team is
// not part of the cohort. Ties keep the incoming order, matching how the
// profile screen has always displayed them.
func RankByRating(cohort []models.Team, teamID string) models.TeamRank {
	sorted := append([]models.Team(nil), cohort...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	rank := 0
	for i, t := range sorted {
		if t.ID == teamID {
			rank = i + 1
			break
		}
	}
	return models.TeamRank{Rank: rank, Total: len(sorted)}
}

// FilterByPrefecture keeps teams from the given prefecture.
func FilterByPrefecture(teams []models.Team, prefecture string) []models.Team {
	var out []models.Team
	for _, t := range teams {
		if t.Prefecture == prefecture {
			out = append(out, t)
		}
	}
	return out
}

// FilterByAgeCategory keeps teams of the given age category.
func FilterByAgeCategory(teams []models.Team, category models.AgeCategory) []models.Team {
	var out []models.Team
	for _, t := range teams {
		if t.AgeCategory == category {
			out = append(out, t)
		}
	}
	return out
}
