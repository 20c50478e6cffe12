package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*store.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testTime)
	return store.New(clock, zerolog.Nop()), clock
}

func seedUniverse(t *testing.T, s *store.Store) {
	t.Helper()
	teams := []models.Team{
		{ID: "team-1", Name: "FC Striker Kids", Rating: 1500, Prefecture: "Tokyo", Level: models.LevelIntermediate, AgeCategory: models.AgeU12, AvailableSlotsText: models.AvailabilityOpen},
		{ID: "team-2", Name: "Blue Wings FC", Rating: 1800, Prefecture: "Tokyo", Level: models.LevelAdvanced, AgeCategory: models.AgeU12, AvailableSlotsText: models.AvailabilityWeekendsOnly},
		{ID: "team-3", Name: "Green Valley SC", Rating: 1250, Prefecture: "Kanagawa", Level: models.LevelBeginner, AgeCategory: models.AgeU10},
		{ID: "team-4", Name: "Red Comets", Rating: 1480, Prefecture: "Saitama", Level: models.LevelIntermediate, AgeCategory: models.AgeU12, AvailableSlotsText: models.AvailabilityOpen},
	}
	managed := []models.Team{teams[0]}
	s.Seed(teams, managed, nil, nil, nil, nil, nil, nil)
}
