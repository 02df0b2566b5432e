package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/app/moderation"
	"github.com/ufobeep/quarantine/pkg/domain"
	"github.com/ufobeep/quarantine/pkg/handlers/http/request"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type approveAlertHandler struct {
	logger   *logrus.Logger
	approver moderation.Approver
}

func NewApproveAlertHandler(logger *logrus.Logger, approver moderation.Approver) Handler {
	return &approveAlertHandler{
		logger:   logger,
		approver: approver,
	}
}

func (h *approveAlertHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	var req request.ApproveAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	a, err := h.approver.Approve(c.Context(), id, req.ModeratorID, req.ModeratorName, req.Metadata)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to approve alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response.FromAlert(a))
}
