package core

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/cron"
	"github.com/d-exit/team-management-app.ver4/packages/core/draft"
	"github.com/d-exit/team-management-app.ver4/packages/core/handlers"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type Module struct {
	TeamHandler        *handlers.TeamHandler
	TeamService        *services.TeamService
	MatchHandler       *handlers.MatchHandler
	MatchService       *services.MatchService
	MatchmakingHandler *handlers.MatchmakingHandler
	MatchmakingService *services.MatchmakingService
	GuidelineHandler   *handlers.GuidelineHandler
	GuidelineService   *services.GuidelineService
	ChatHandler        *handlers.ChatHandler
	ChatService        *services.ChatService
	ScheduleHandler    *handlers.ScheduleHandler
	ScheduleService    *services.ScheduleService
	SessionHandler     *handlers.SessionHandler
	VenueHandler       *handlers.VenueHandler

	AutoCompletionService *services.AutoCompletionService
	Scheduler             *cron.Scheduler

	store *store.Store
	log   zerolog.Logger
}

func NewModule(st *store.Store, drafts *draft.FileStore, clock clockwork.Clock, log zerolog.Logger) *Module {
	teamService := services.NewTeamService(st, log)
	matchService := services.NewMatchService(st, log)
	teamHandler := handlers.NewTeamHandler(teamService, matchService)

	matchmakingService := services.NewMatchmakingService(st, log)
	matchmakingHandler := handlers.NewMatchmakingHandler(matchmakingService)

	chatService := services.NewChatService(st, clock, log)
	chatHandler := handlers.NewChatHandler(chatService)

	guidelineService := services.NewGuidelineService(st, drafts, chatService, log)
	guidelineHandler := handlers.NewGuidelineHandler(guidelineService)
	matchHandler := handlers.NewMatchHandler(matchService, guidelineService)

	scheduleService := services.NewScheduleService(st, log)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	sessionHandler := handlers.NewSessionHandler(st)
	venueHandler := handlers.NewVenueHandler(st)

	autoCompletionService := services.NewAutoCompletionService(st, clock, log)
	scheduler := cron.NewScheduler(autoCompletionService, log)

	return &Module{
		TeamHandler:           teamHandler,
		TeamService:           teamService,
		MatchHandler:          matchHandler,
		MatchService:          matchService,
		MatchmakingHandler:    matchmakingHandler,
		MatchmakingService:    matchmakingService,
		GuidelineHandler:      guidelineHandler,
		GuidelineService:      guidelineService,
		ChatHandler:           chatHandler,
		ChatService:           chatService,
		ScheduleHandler:       scheduleHandler,
		ScheduleService:       scheduleService,
		SessionHandler:        sessionHandler,
		VenueHandler:          venueHandler,
		AutoCompletionService: autoCompletionService,
		Scheduler:             scheduler,
		store:                 st,
		log:                   log.With().Str("module", "core").Logger(),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	session := r.Group("/session")
	{
		session.GET("", m.SessionHandler.GetSession)
		session.POST("/navigate", m.SessionHandler.Navigate)
		session.PUT("/managed-team", m.SessionHandler.SelectManagedTeam)
		session.DELETE("/managed-team", m.SessionHandler.ClearManagedTeam)
		session.PUT("/team", m.SessionHandler.SelectTeam)
		session.PUT("/chat-thread", m.SessionHandler.SelectChatThread)
		session.PUT("/guideline-match", m.SessionHandler.SelectGuidelineMatch)
	}

	teams := r.Group("/teams")
	{
		teams.GET("", m.TeamHandler.GetAllTeams)
		teams.POST("", m.TeamHandler.CreateTeam)
		teams.GET("/managed", m.TeamHandler.GetManagedTeams)
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.PUT("/:id", m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", m.TeamHandler.DeleteTeam)
		teams.GET("/:id/rank", m.TeamHandler.GetTeamRank)
		teams.GET("/:id/matches", m.TeamHandler.GetTeamMatches)
		teams.GET("/:id/scoring-log", m.TeamHandler.GetScoringLog)
	}

	followed := r.Group("/followed-teams")
	{
		followed.GET("", m.TeamHandler.GetFollowedTeams)
		followed.POST("/toggle", m.TeamHandler.ToggleFollow)
		followed.PATCH("/:id/favorite", m.TeamHandler.ToggleFavorite)
	}

	r.POST("/matchmaking/search", m.MatchmakingHandler.Search)

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/guidelines", m.MatchHandler.GetPastGuidelines)
		matches.POST("/guideline", m.MatchHandler.SaveGuidelineAsMatch)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.PATCH("/:id/status", m.MatchHandler.UpdateMatchStatus)
		matches.PUT("/:id/guideline", m.MatchHandler.UpdateGuideline)
	}

	guidelines := r.Group("/guidelines")
	{
		guidelines.GET("/draft", m.GuidelineHandler.GetDraft)
		guidelines.PUT("/draft", m.GuidelineHandler.SaveDraft)
		guidelines.DELETE("/draft", m.GuidelineHandler.ResetDraft)
		guidelines.GET("/copy/:id", m.GuidelineHandler.CopyFrom)
		guidelines.POST("/preview", m.GuidelineHandler.Preview)
		guidelines.POST("/share", m.GuidelineHandler.Share)
	}

	r.GET("/venues", m.VenueHandler.GetVenues)

	schedule := r.Group("/schedule")
	{
		schedule.POST("", m.ScheduleHandler.CreateEvent)
		schedule.GET("/teams/:teamId", m.ScheduleHandler.GetTeamEvents)
		schedule.PATCH("/:id", m.ScheduleHandler.UpdateEvent)
		schedule.DELETE("/:id", m.ScheduleHandler.DeleteEvent)
	}

	chat := r.Group("/chat")
	{
		chat.GET("/threads", m.ChatHandler.GetThreads)
		chat.POST("/threads", m.ChatHandler.CreateThread)
		chat.GET("/threads/:id/messages", m.ChatHandler.GetMessages)
		chat.POST("/threads/:id/messages", m.ChatHandler.SendMessage)
		chat.PATCH("/threads/:id/read", m.ChatHandler.MarkRead)
	}
}

// StartScheduler starts the cron scheduler for match auto-completion
func (m *Module) StartScheduler() error {
	m.log.Info().Msg("starting core module scheduler")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	m.log.Info().Msg("stopping core module scheduler")
	m.Scheduler.Stop()
}

// RunAutoCompletionNow manually triggers auto-completion (useful for testing)
func (m *Module) RunAutoCompletionNow() {
	m.Scheduler.RunNow()
}
