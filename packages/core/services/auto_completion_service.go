package services

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

// AutoCompletionService moves matches whose date has passed into the
// completed state so the match list does not fill up with stale fixtures
// nobody closed out by hand.
type AutoCompletionService struct {
	store *store.Store
	clock clockwork.Clock
	log   zerolog.Logger
}

func NewAutoCompletionService(st *store.Store, clock clockwork.Clock, log zerolog.Logger) *AutoCompletionService {
	return &AutoCompletionService{
		store: st,
		clock: clock,
		log:   log.With().Str("service", "auto_completion").Logger(),
	}
}

// ExpiredCount reports how many matches are past-dated and not yet final.
func (s *AutoCompletionService) ExpiredCount() int {
	today := s.clock.Now().Format("2006-01-02")
	count := 0
	for _, m := range s.store.Matches() {
		if expired(m, today) {
			count++
		}
	}
	return count
}

// CompleteExpiredMatches marks every past-dated, non-final match completed
// and returns how many were advanced.
func (s *AutoCompletionService) CompleteExpiredMatches() int {
	today := s.clock.Now().Format("2006-01-02")
	completed := 0

	s.store.UpdateMatches(func(matches []models.Match) []models.Match {
		for i := range matches {
			if expired(matches[i], today) {
				matches[i].Status = models.MatchStatusCompleted
				completed++
			}
		}
		return matches
	})

	if completed > 0 {
		s.log.Info().Int("count", completed).Msg("expired matches auto-completed")
	}
	return completed
}

// expired: strictly before today; dates are normalized YYYY-MM-DD so string
// comparison is chronological.
func expired(m models.Match, today string) bool {
	return m.Date != "" && m.Date < today && !m.Status.Final()
}
