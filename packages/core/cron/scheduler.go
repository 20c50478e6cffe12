package cron

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type Scheduler struct {
	cron           *cron.Cron
	autoCompletion *services.AutoCompletionService
	log            zerolog.Logger
}

func NewScheduler(autoCompletion *services.AutoCompletionService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		autoCompletion: autoCompletion,
		log:            log.With().Str("component", "cron").Logger(),
	}
}

// Start schedules the auto-completion job to run hourly.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.runAutoCompletion); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
	return nil
}

// Stop shuts the scheduler down without waiting for running jobs.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) runAutoCompletion() {
	expired := s.autoCompletion.ExpiredCount()
	if expired == 0 {
		return
	}
	s.log.Info().Int("expired", expired).Msg("auto-completing expired matches")
	s.autoCompletion.CompleteExpiredMatches()
}

// RunNow triggers the auto-completion job outside its schedule.
func (s *Scheduler) RunNow() {
	s.runAutoCompletion()
}
