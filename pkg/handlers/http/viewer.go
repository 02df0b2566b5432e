package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// viewerFromRequest reconstructs the viewer context established upstream by
// the authentication layer. Identity verification is out of scope here; the
// headers are trusted the same way the rendering layers trust their session.
func viewerFromRequest(c *fiber.Ctx) quarantine.Viewer {
	userID := c.Get("X-User-ID")
	role := c.Get("X-Viewer-Role")
	return quarantine.Viewer{
		IsPublic:        role == "" || role == "public",
		IsReporter:      userID != "",
		IsModerator:     role == "moderator",
		UserID:          userID,
		ShowQuarantined: c.QueryBool("show_quarantined"),
	}
}
