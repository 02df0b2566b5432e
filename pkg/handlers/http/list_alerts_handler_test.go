package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAlert "github.com/ufobeep/quarantine/pkg/app/alert"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/handlers/http/response"
	"github.com/ufobeep/quarantine/pkg/infra/store"
)

type listAlertsResponse struct {
	Alerts []response.AlertOutput `json:"alerts"`
	Count  int                    `json:"count"`
}

func newListAlertsApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	s := store.NewMemoryStore()
	handler := NewListAlertsHandler(logrus.New(), appAlert.NewFinder(logrus.New(), s))
	app := fiber.New()
	app.Get("/api/v1/alerts", handler.Handle)
	return app, s
}

func listAlerts(t *testing.T, app *fiber.App, target string, headers map[string]string) listAlertsResponse {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out listAlertsResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestListAlertsHandler_PublicFeedExcludesHidden(t *testing.T) {
	app, s := newListAlertsApp(t)
	cleanID := uuid.New()
	seedStore(t, s, domainAlert.New(testSighting(cleanID)), hiddenTestAlert(uuid.New()))

	out := listAlerts(t, app, "/api/v1/alerts", nil)

	require.Equal(t, 1, out.Count)
	assert.Equal(t, cleanID, out.Alerts[0].Sighting.ID)
}

func TestListAlertsHandler_ModeratorQueueIncludesHidden(t *testing.T) {
	app, s := newListAlertsApp(t)
	seedStore(t, s, domainAlert.New(testSighting(uuid.New())), hiddenTestAlert(uuid.New()))

	out := listAlerts(t, app, "/api/v1/alerts", map[string]string{"X-Viewer-Role": "moderator"})
	assert.Equal(t, 2, out.Count)
}

func TestListAlertsHandler_IncludeQuarantinedRequiresModerator(t *testing.T) {
	app, s := newListAlertsApp(t)
	seedStore(t, s, hiddenTestAlert(uuid.New()))

	// The flag is ignored for anonymous callers.
	out := listAlerts(t, app, "/api/v1/alerts?include_quarantined=true", nil)
	assert.Equal(t, 0, out.Count)

	out = listAlerts(t, app, "/api/v1/alerts?include_quarantined=true",
		map[string]string{"X-Viewer-Role": "moderator"})
	assert.Equal(t, 1, out.Count)
}

func TestListAlertsHandler_FiltersByLevelAndCategory(t *testing.T) {
	app, s := newListAlertsApp(t)

	low := testSighting(uuid.New())
	low.Level = domainAlert.LevelLow
	high := testSighting(uuid.New())
	high.Level = domainAlert.LevelHigh
	seedStore(t, s, domainAlert.New(low), domainAlert.New(high))

	out := listAlerts(t, app, "/api/v1/alerts?min_level=high", nil)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, high.ID, out.Alerts[0].Sighting.ID)

	out = listAlerts(t, app, "/api/v1/alerts?category=craft", nil)
	assert.Equal(t, 0, out.Count)
}

func TestListAlertsHandler_InvalidMinLevel(t *testing.T) {
	app, _ := newListAlertsApp(t)

	req := httptest.NewRequest("GET", "/api/v1/alerts?min_level=cosmic", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestListAlertsHandler_ContentWarningExposedToModerator(t *testing.T) {
	app, s := newListAlertsApp(t)
	seedStore(t, s, hiddenTestAlert(uuid.New()))

	out := listAlerts(t, app, "/api/v1/alerts", map[string]string{"X-Viewer-Role": "moderator"})
	require.Equal(t, 1, out.Count)
	assert.Contains(t, out.Alerts[0].ContentWarning, "explicit")
}
