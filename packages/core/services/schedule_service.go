package services

import (
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type ScheduleService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewScheduleService(st *store.Store, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		store: st,
		log:   log.With().Str("service", "schedule").Logger(),
	}
}

func (s *ScheduleService) EventsForTeam(teamID string) []models.ScheduleEvent {
	return s.store.ScheduleEventsForTeam(teamID)
}

func (s *ScheduleService) CreateEvent(req models.CreateScheduleEventRequest) (models.ScheduleEvent, error) {
	if _, err := s.store.TeamByID(req.TeamID); err != nil {
		return models.ScheduleEvent{}, err
	}
	return s.store.AddScheduleEvent(models.ScheduleEvent{
		TeamID:      req.TeamID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}), nil
}

func (s *ScheduleService) UpdateEvent(id string, req models.UpdateScheduleEventRequest) (models.ScheduleEvent, error) {
	event, err := s.store.ScheduleEventByID(id)
	if err != nil {
		return models.ScheduleEvent{}, err
	}

	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	if err := s.store.UpdateScheduleEvent(event); err != nil {
		return models.ScheduleEvent{}, err
	}
	return event, nil
}

func (s *ScheduleService) DeleteEvent(id string) error {
	return s.store.DeleteScheduleEvent(id)
}
