package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type listAlertsHandler struct {
	logger *logrus.Logger
	finder appAlert.Finder
}

func NewListAlertsHandler(logger *logrus.Logger, finder appAlert.Finder) Handler {
	return &listAlertsHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *listAlertsHandler) Handle(c *fiber.Ctx) error {
	viewer := viewerFromRequest(c)

	filter := domainAlert.Filter{
		Category:     c.Query("category"),
		Status:       domainAlert.Status(c.Query("status")),
		MinLevel:     domainAlert.Level(c.Query("min_level")),
		VerifiedOnly: c.QueryBool("verified_only"),

		// Only moderators may bypass the visibility check outright.
		IncludeQuarantined: c.QueryBool("include_quarantined") && viewer.IsModerator,
		IsPublicContext:    viewer.IsPublic,
		UserID:             viewer.UserID,
		IsModerator:        viewer.IsModerator,
	}
	if filter.MinLevel != "" && !filter.MinLevel.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid min_level"})
	}

	alerts, err := h.finder.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list alerts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"alerts": response.FromAlerts(alerts),
		"count":  len(alerts),
	})
}
