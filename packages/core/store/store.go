// Package store holds the canonical in-memory application state: the entity
// collections and the operator's transient selection state. All mutation goes
// through named operations on Store so the cross-entity invariants (managed/
// global/followed team synchronization, match and thread ordering, view-scoped
// selections) are preserved in one place. Nothing here touches disk or the
// network; state lives for the process lifetime.
package store

import (
	"errors"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrTeamNotFound   = errors.New("team not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrThreadNotFound = errors.New("thread not found")
	ErrEventNotFound  = errors.New("schedule event not found")
	ErrInvalidView    = errors.New("unknown view")
)

// DefaultOperatorID is the operator identity used before any managed team has
// been selected.
const DefaultOperatorID = "user-self"

type Store struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	log   zerolog.Logger

	teams          []models.Team
	managedTeams   []models.Team
	followedTeams  []models.FollowedTeam
	matches        []models.Match
	venues         []models.Venue
	scheduleEvents []models.ScheduleEvent
	chatThreads    []models.ChatThread
	chatMessages   map[string][]models.ChatMessage

	session models.SessionState
}

func New(clock clockwork.Clock, log zerolog.Logger) *Store {
	return &Store{
		clock:        clock,
		log:          log.With().Str("component", "store").Logger(),
		chatMessages: make(map[string][]models.ChatMessage),
		session: models.SessionState{
			CurrentView:           models.ViewTeamManagement,
			RequiresTeamSelection: true,
		},
	}
}

// Seed replaces all collections at once. Used by the fixture loader at
// startup, before any handler runs.
func (s *Store) Seed(teams []models.Team, managed []models.Team, followed []models.FollowedTeam,
	matches []models.Match, venues []models.Venue, events []models.ScheduleEvent,
	threads []models.ChatThread, messages map[string][]models.ChatMessage) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = cloneTeams(teams)
	s.managedTeams = cloneTeams(managed)
	s.followedTeams = cloneFollowedTeams(followed)
	s.matches = cloneMatches(matches)
	s.venues = append([]models.Venue(nil), venues...)
	s.scheduleEvents = append([]models.ScheduleEvent(nil), events...)
	s.chatThreads = cloneThreads(threads)
	s.chatMessages = make(map[string][]models.ChatMessage, len(messages))
	for id, msgs := range messages {
		s.chatMessages[id] = append([]models.ChatMessage(nil), msgs...)
	}

	sortMatchesByDateDesc(s.matches)
	sortThreadsByActivityDesc(s.chatThreads)

	s.log.Info().
		Int("teams", len(s.teams)).
		Int("managed", len(s.managedTeams)).
		Int("matches", len(s.matches)).
		Int("threads", len(s.chatThreads)).
		Msg("store seeded")
}

// Venues returns the read-only venue collection.
func (s *Store) Venues() []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Venue(nil), s.venues...)
}
