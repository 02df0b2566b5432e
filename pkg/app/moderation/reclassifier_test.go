package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	alertmocks "github.com/ufobeep/quarantine/pkg/domain/alert/mocks"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
	cachemocks "github.com/ufobeep/quarantine/pkg/infra/cache/mocks"
)

func newTestReclassifier(alerts *alertmocks.Repository, publisher *cachemocks.EventPublisher) Reclassifier {
	logger := logrus.New()
	return NewReclassifier(logger, alerts, NewDeriver(logger, DefaultThresholds()), publisher)
}

func TestReclassifier_QuarantinesNsfwAlert(t *testing.T) {
	alertID := uuid.New()
	alerts := alertmocks.NewRepository(t)
	publisher := cachemocks.NewEventPublisher(t)
	r := newTestReclassifier(alerts, publisher)

	analysis := alert.ContentAnalysisResult{IsNsfw: true, NsfwConfidence: 0.91}

	alerts.On("Get", mock.Anything, alertID).Return(storedAlert(alertID), nil)
	alerts.On("Put", mock.Anything, mock.MatchedBy(func(a alert.EnrichedAlert) bool {
		return a.Quarantine.Action == quarantine.ActionHidePublic &&
			a.Enrichment != nil && a.Enrichment.Analysis != nil &&
			a.Enrichment.Analysis.NsfwConfidence == 0.91
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	updated, err := r.Reclassify(context.Background(), alertID, analysis)

	require.NoError(t, err)
	assert.True(t, updated.IsNsfwQuarantined())
	assert.True(t, updated.Quarantine.IsAutoQuarantined())
}

func TestReclassifier_CleanVerdictLiftsAutoQuarantine(t *testing.T) {
	alertID := uuid.New()
	alerts := alertmocks.NewRepository(t)
	publisher := cachemocks.NewEventPublisher(t)
	r := newTestReclassifier(alerts, publisher)

	autoHidden := storedAlert(alertID)
	st := quarantine.NewState()
	st.Action = quarantine.ActionHidePublic
	st.Reasons = []quarantine.Reason{quarantine.ReasonNsfw}
	autoHidden = autoHidden.WithQuarantine(st)

	alerts.On("Get", mock.Anything, alertID).Return(autoHidden, nil)
	alerts.On("Put", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	updated, err := r.Reclassify(context.Background(), alertID, alert.ContentAnalysisResult{
		QualityScore: 0.8,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsQuarantined())
}

func TestReclassifier_PreservesManualDecision(t *testing.T) {
	alertID := uuid.New()
	alerts := alertmocks.NewRepository(t)
	publisher := cachemocks.NewEventPublisher(t)
	r := newTestReclassifier(alerts, publisher)

	manual := storedAlert(alertID)
	manual = manual.WithQuarantine(ApplyManualQuarantine(manual.Quarantine, QuarantineCommand{
		Action:      quarantine.ActionApproved,
		ModeratorID: "mod-7",
	}, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)))

	alerts.On("Get", mock.Anything, alertID).Return(manual, nil)
	alerts.On("Put", mock.Anything, mock.MatchedBy(func(a alert.EnrichedAlert) bool {
		return a.Quarantine.Action == quarantine.ActionApproved &&
			a.Quarantine.ModeratorID == "mod-7"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	updated, err := r.Reclassify(context.Background(), alertID, alert.ContentAnalysisResult{
		IsNsfw:         true,
		NsfwConfidence: 0.99,
	})

	require.NoError(t, err)
	assert.Equal(t, manual.Quarantine, updated.Quarantine)
	// The enrichment is still recorded even though the verdict is discarded.
	require.NotNil(t, updated.Enrichment)
	assert.True(t, updated.Enrichment.Analysis.IsNsfw)
}
