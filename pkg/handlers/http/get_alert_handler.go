package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	"github.com/ufobeep/quarantine/pkg/domain"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type getAlertHandler struct {
	logger *logrus.Logger
	finder appAlert.Finder
}

func NewGetAlertHandler(logger *logrus.Logger, finder appAlert.Finder) Handler {
	return &getAlertHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getAlertHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	a, err := h.finder.Find(c.Context(), id, viewerFromRequest(c))
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, domain.ErrAccessDenied) {
			// Quarantined content is indistinguishable from absent content
			// for viewers without access.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "alert not found"})
		}
		h.logger.WithError(err).Error("failed to fetch alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response.FromAlert(a))
}
