package server

import (
	"backend-surfbuddy/internal/analytics"
	"backend-surfbuddy/internal/config"
	"backend-surfbuddy/internal/forecast"
	"backend-surfbuddy/internal/photo"
	"backend-surfbuddy/internal/session"
	"backend-surfbuddy/internal/spot"
	"backend-surfbuddy/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	Redis *redis.Client
	Log   *zap.Logger
}

func NewServer(cfg config.Config, rdb *redis.Client, photos photo.ObjectStore, log *zap.Logger) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		Redis: rdb,
		Log:   log,
	}

	registerRoutes(s, photos)
	return s
}

func registerRoutes(s *Server, photos photo.ObjectStore) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	st := store.New(s.Redis, s.Log)
	sessions := session.NewService(st, s.Log)
	spots := spot.NewService(st, s.Log)

	var pipe *photo.Pipeline
	if photos != nil {
		pipe = photo.NewPipeline(photos, s.Cfg.PhotoBucket, s.Log)
	}

	fcastClient := forecast.NewClient(s.Cfg.StormglassBaseURL, s.Cfg.StormglassAPIKey, nil)

	sessionGroup := s.App.Group("/sessions")
	session.RegisterRoutes(sessionGroup, sessions)
	photo.RegisterRoutes(sessionGroup, pipe, sessions)
	spot.RegisterRoutes(s.App.Group("/spots"), spots)
	analytics.RegisterRoutes(s.App.Group("/analytics"), sessions)
	forecast.RegisterRoutes(s.App.Group("/forecast"), forecast.NewService(fcastClient, s.Log))
}
