package syncgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
	"github.com/ufobeep/quarantine/pkg/infra/httpx"
)

type Settings struct {
	BaseURL            string  `mapstructure:"base_url"`
	APIKey             string  `mapstructure:"api_key"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds"`
	BreakerMaxFailures uint32  `mapstructure:"breaker_max_failures"`
	BreakerTimeout     float64 `mapstructure:"breaker_timeout_seconds"`
}

// DecodeSettings builds gateway settings from the loosely typed map the
// configuration layer carries.
func DecodeSettings(raw map[string]interface{}) (Settings, error) {
	var s Settings
	if err := mapstructure.Decode(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode sync gateway settings: %w", err)
	}
	if s.BaseURL == "" {
		return Settings{}, fmt.Errorf("sync gateway base_url must be specified")
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = 10
	}
	if s.BreakerMaxFailures == 0 {
		s.BreakerMaxFailures = 5
	}
	if s.BreakerTimeout <= 0 {
		s.BreakerTimeout = 30
	}
	return s, nil
}

type httpGateway struct {
	logger   *logrus.Logger
	client   httpx.Client
	breaker  httpx.CircuitBreaker
	settings Settings
}

func NewHTTPGateway(logger *logrus.Logger, client httpx.Client, settings Settings) Gateway {
	if client == nil {
		client = &http.Client{Timeout: time.Duration(settings.TimeoutSeconds) * time.Second}
	}
	return &httpGateway{
		logger:   logger,
		client:   client,
		breaker:  httpx.NewCircuitBreaker("sync-gateway", time.Duration(settings.BreakerTimeout*float64(time.Second)), settings.BreakerMaxFailures),
		settings: settings,
	}
}

type quarantineRequest struct {
	Action       string   `json:"action"`
	Reasons      []string `json:"reasons,omitempty"`
	CustomReason string   `json:"custom_reason,omitempty"`
}

type approvalRequest struct {
	ModeratorID   string `json:"moderator_id"`
	ModeratorName string `json:"moderator_name,omitempty"`
}

func (g *httpGateway) SyncQuarantine(ctx context.Context, alertID uuid.UUID, action quarantine.Action, reasons []quarantine.Reason, customReason string) error {
	body := quarantineRequest{
		Action:       string(action),
		CustomReason: customReason,
	}
	for _, r := range reasons {
		body.Reasons = append(body.Reasons, string(r))
	}
	url := fmt.Sprintf("%s/alerts/%s/quarantine", g.settings.BaseURL, alertID)
	return g.post(ctx, url, body)
}

func (g *httpGateway) SyncApproval(ctx context.Context, alertID uuid.UUID, moderatorID, moderatorName string) error {
	body := approvalRequest{
		ModeratorID:   moderatorID,
		ModeratorName: moderatorName,
	}
	url := fmt.Sprintf("%s/alerts/%s/approve", g.settings.BaseURL, alertID)
	return g.post(ctx, url, body)
}

func (g *httpGateway) post(ctx context.Context, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal sync payload: %w", err)
	}
	return g.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to build sync request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if g.settings.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+g.settings.APIKey)
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("sync gateway request failed: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusMultipleChoices {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			g.logger.WithField("status", resp.StatusCode).Error("sync gateway rejected request")
			return fmt.Errorf("sync gateway returned status %d: %s", resp.StatusCode, snippet)
		}
		return nil
	})
}
