package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/app/moderation"
	"github.com/ufobeep/quarantine/pkg/domain"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
	"github.com/ufobeep/quarantine/pkg/handlers/http/request"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type quarantineAlertHandler struct {
	logger      *logrus.Logger
	quarantiner moderation.Quarantiner
}

func NewQuarantineAlertHandler(logger *logrus.Logger, quarantiner moderation.Quarantiner) Handler {
	return &quarantineAlertHandler{
		logger:      logger,
		quarantiner: quarantiner,
	}
}

func (h *quarantineAlertHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	var req request.QuarantineAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	action, err := quarantine.ParseAction(req.Action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	reasons := make([]quarantine.Reason, 0, len(req.Reasons))
	for _, raw := range req.Reasons {
		reason, err := quarantine.ParseReason(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		reasons = append(reasons, reason)
	}

	a, err := h.quarantiner.Quarantine(c.Context(), id, moderation.QuarantineCommand{
		Action:               action,
		Reasons:              reasons,
		CustomReason:         req.CustomReason,
		ModeratorID:          req.ModeratorID,
		ModeratorName:        req.ModeratorName,
		AllowReporterAccess:  req.AllowReporterAccess,
		AllowModeratorAccess: req.AllowModeratorAccess,
		Metadata:             req.Metadata,
	})
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to quarantine alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response.FromAlert(a))
}
