package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/ufobeep/quarantine/pkg/config"
	handlers "github.com/ufobeep/quarantine/pkg/handlers/http"
	"github.com/ufobeep/quarantine/pkg/infra/metrics"
)

type ModerationServerDI struct {
	Config           *config.Config
	Logger           *logrus.Logger
	HandlerTransport handlers.HandlerTransport
}

// ModerationServer exposes the quarantine engine to the moderation UI and
// the enrichment pipeline.
type ModerationServer struct {
	config           *config.Config
	logger           *logrus.Logger
	router           *fiber.App
	handlerTransport handlers.HandlerTransport
}

func NewModerationServer(di ModerationServerDI) *ModerationServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
	})
	r.Use(recover.New())

	return &ModerationServer{
		config:           di.Config,
		logger:           di.Logger,
		router:           r,
		handlerTransport: di.HandlerTransport,
	}
}

func (s *ModerationServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting moderation server")
	return s.router.Listen(addr)
}

func (s *ModerationServer) Shutdown() error {
	return s.router.Shutdown()
}

func (s *ModerationServer) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		alerts := v1.Group("/alerts")
		{
			alerts.Post("", s.handlerTransport.CreateAlertHandler.Handle)
			alerts.Get("", s.handlerTransport.ListAlertsHandler.Handle)
			alerts.Get("/:id", s.handlerTransport.GetAlertHandler.Handle)
			alerts.Delete("/:id", s.handlerTransport.EvictAlertHandler.Handle)
			alerts.Post("/:id/analysis", s.handlerTransport.SubmitAnalysisHandler.Handle)
			alerts.Post("/:id/quarantine", s.handlerTransport.QuarantineAlertHandler.Handle)
			alerts.Post("/:id/approve", s.handlerTransport.ApproveAlertHandler.Handle)
		}
	}
}

func (s *ModerationServer) setupHealthCheck() {
	s.router.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

func (s *ModerationServer) setupMetricsEndpoint() {
	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
	s.router.Get("/metrics", func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	})
}
