package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	"github.com/ufobeep/quarantine/pkg/domain"
)

type evictAlertHandler struct {
	logger  *logrus.Logger
	evictor appAlert.Evictor
}

func NewEvictAlertHandler(logger *logrus.Logger, evictor appAlert.Evictor) Handler {
	return &evictAlertHandler{
		logger:  logger,
		evictor: evictor,
	}
}

func (h *evictAlertHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	if err := h.evictor.Evict(c.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to evict alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(http.StatusNoContent)
}
