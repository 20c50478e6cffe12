package store

import (
	"fmt"
	"sort"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// ScheduleEventsForTeam returns the events owned by a team, date ascending.
func (s *Store) ScheduleEventsForTeam(teamID string) []models.ScheduleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ScheduleEvent
	for _, e := range s.scheduleEvents {
		if e.TeamID == teamID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// ScheduleEventByID looks an event up by id.
func (s *Store) ScheduleEventByID(id string) (models.ScheduleEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.scheduleEvents {
		if e.ID == id {
			return e, nil
		}
	}
	return models.ScheduleEvent{}, ErrEventNotFound
}

// AddScheduleEvent creates a calendar entry for a team.
func (s *Store) AddScheduleEvent(event models.ScheduleEvent) models.ScheduleEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = fmt.Sprintf("event-%d", s.clock.Now().UnixMilli())
	s.scheduleEvents = append(s.scheduleEvents, event)
	s.log.Debug().Str("event_id", event.ID).Str("team_id", event.TeamID).Msg("schedule event added")
	return event
}

// UpdateScheduleEvent replaces the stored event with the given record.
func (s *Store) UpdateScheduleEvent(event models.ScheduleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.scheduleEvents {
		if s.scheduleEvents[i].ID == event.ID {
			s.scheduleEvents[i] = event
			return nil
		}
	}
	return ErrEventNotFound
}

// DeleteScheduleEvent removes the event.
func (s *Store) DeleteScheduleEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.scheduleEvents {
		if e.ID == id {
			s.scheduleEvents = append(s.scheduleEvents[:i], s.scheduleEvents[i+1:]...)
			return nil
		}
	}
	return ErrEventNotFound
}
