package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/config"
	"github.com/d-exit/team-management-app.ver4/fixtures"
	"github.com/d-exit/team-management-app.ver4/packages/core"
	"github.com/d-exit/team-management-app.ver4/packages/core/draft"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

// @title           Team Management API
// @version         1.0
// @description     API for amateur sports club management: rosters, matches, tournament guidelines, matchmaking and chat

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.Load()
	log := newLogger(cfg)
	if !envLoaded {
		log.Info().Msg("no .env file found, using environment variables")
	}
	gin.SetMode(cfg.GinMode)

	clock := clockwork.NewRealClock()
	st := store.New(clock, log)

	if err := fixtures.NewFixtures(st, log).Load(cfg.SeedProfile); err != nil {
		log.Fatal().Err(err).Msg("failed to load fixtures")
	}

	drafts := draft.NewFileStore(cfg.DraftFile, log)

	module := core.NewModule(st, drafts, clock, log)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	module.SetupRoutes(r)
	r.GET("/health", healthHandler)

	if err := module.StartScheduler(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer module.StopScheduler()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.PrettyLog {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	return log
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message string `json:"message" example:"Server is running"`
}

// @Summary Health Check
// @Description Check if the server is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{Message: "Server is running"})
}
