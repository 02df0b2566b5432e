package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/handlers/http/request"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type createAlertHandler struct {
	logger  *logrus.Logger
	creator appAlert.Creator
}

func NewCreateAlertHandler(logger *logrus.Logger, creator appAlert.Creator) Handler {
	return &createAlertHandler{
		logger:  logger,
		creator: creator,
	}
}

func (h *createAlertHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	status := domainAlert.Status(req.Status)
	if status == "" {
		status = domainAlert.StatusActive
	}
	level := domainAlert.Level(req.Level)
	if level == "" {
		level = domainAlert.LevelLow
	}
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	a, err := h.creator.Create(c.Context(), domainAlert.Sighting{
		ID:           id,
		ReporterID:   req.ReporterID,
		ReporterName: req.ReporterName,
		Category:     req.Category,
		Status:       status,
		Level:        level,
		Verified:     req.Verified,
		CreatedAt:    createdAt,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to create alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(response.FromAlert(a))
}
