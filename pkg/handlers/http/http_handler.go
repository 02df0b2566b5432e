package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Alerts
	CreateAlertHandler Handler
	GetAlertHandler    Handler
	ListAlertsHandler  Handler
	EvictAlertHandler  Handler

	// Moderation
	SubmitAnalysisHandler  Handler
	QuarantineAlertHandler Handler
	ApproveAlertHandler    Handler
}
