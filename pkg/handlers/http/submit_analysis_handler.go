package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/app/moderation"
	"github.com/ufobeep/quarantine/pkg/domain"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/handlers/http/request"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
)

type submitAnalysisHandler struct {
	logger       *logrus.Logger
	reclassifier moderation.Reclassifier
}

func NewSubmitAnalysisHandler(logger *logrus.Logger, reclassifier moderation.Reclassifier) Handler {
	return &submitAnalysisHandler{
		logger:       logger,
		reclassifier: reclassifier,
	}
}

func (h *submitAnalysisHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alert ID"})
	}

	var req request.SubmitAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	a, err := h.reclassifier.Reclassify(c.Context(), id, domainAlert.ContentAnalysisResult{
		IsNsfw:                  req.IsNsfw,
		NsfwConfidence:          req.NsfwConfidence,
		DetectedObjects:         req.DetectedObjects,
		SuggestedTags:           req.SuggestedTags,
		QualityScore:            req.QualityScore,
		IsPotentiallyMisleading: req.IsPotentiallyMisleading,
	})
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to reclassify alert")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response.FromAlert(a))
}
