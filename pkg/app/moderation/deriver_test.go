package moderation

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

func newTestDeriver() Deriver {
	logger := logrus.New()
	return NewDeriver(logger, DefaultThresholds())
}

func TestDeriveFromAnalysis_NsfwAboveThreshold(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{
		IsNsfw:         true,
		NsfwConfidence: 0.95,
	})

	assert.Equal(t, quarantine.ActionHidePublic, st.Action)
	assert.Equal(t, []quarantine.Reason{quarantine.ReasonNsfw}, st.Reasons)
	require.NotNil(t, st.ConfidenceScore)
	assert.Equal(t, 0.95, *st.ConfidenceScore)
	assert.True(t, st.IsAutoQuarantined())
	assert.Nil(t, st.QuarantinedAt)
	assert.Empty(t, st.ModeratorID)
}

func TestDeriveFromAnalysis_ThresholdIsInclusive(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{IsNsfw: true, NsfwConfidence: 0.7})
	assert.Equal(t, quarantine.ActionHidePublic, st.Action)

	st = d.DeriveFromAnalysis(alert.ContentAnalysisResult{IsNsfw: true, NsfwConfidence: 0.69})
	assert.Equal(t, quarantine.ActionNone, st.Action)
}

func TestDeriveFromAnalysis_NsfwFlagWithoutConfidenceIsClean(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{IsNsfw: true})
	assert.Equal(t, quarantine.ActionNone, st.Action)
	assert.Empty(t, st.Reasons)
}

func TestDeriveFromAnalysis_Misleading(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{IsPotentiallyMisleading: true})

	assert.Equal(t, quarantine.ActionPendingReview, st.Action)
	assert.Equal(t, []quarantine.Reason{quarantine.ReasonMisinformation}, st.Reasons)
	assert.Nil(t, st.ConfidenceScore)
}

func TestDeriveFromAnalysis_NsfwTakesPrecedenceOverMisleading(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{
		IsNsfw:                  true,
		NsfwConfidence:          0.9,
		IsPotentiallyMisleading: true,
	})

	assert.Equal(t, quarantine.ActionHidePublic, st.Action)
	assert.Equal(t, []quarantine.Reason{quarantine.ReasonNsfw}, st.Reasons)
}

func TestDeriveFromAnalysis_CleanAnalysis(t *testing.T) {
	d := newTestDeriver()

	st := d.DeriveFromAnalysis(alert.ContentAnalysisResult{QualityScore: 0.4})

	assert.Equal(t, quarantine.ActionNone, st.Action)
	assert.False(t, st.IsQuarantined())
}

func TestDeriveFromAnalysis_Idempotent(t *testing.T) {
	d := newTestDeriver()
	analysis := alert.ContentAnalysisResult{IsNsfw: true, NsfwConfidence: 0.88}

	first := d.DeriveFromAnalysis(analysis)
	second := d.DeriveFromAnalysis(analysis)

	assert.Equal(t, first, second)
}

func TestApplyAutoQuarantine_ManualDecisionWins(t *testing.T) {
	d := newTestDeriver()
	now := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)

	manual := ApplyManualQuarantine(quarantine.NewState(), QuarantineCommand{
		Action:        quarantine.ActionApproved,
		ModeratorID:   "mod-7",
		ModeratorName: "Dana",
	}, now)

	got := d.ApplyAutoQuarantine(manual, alert.ContentAnalysisResult{
		IsNsfw:         true,
		NsfwConfidence: 0.99,
	})

	assert.Equal(t, manual, got)
}

func TestApplyAutoQuarantine_ReplacesAutomatedState(t *testing.T) {
	d := newTestDeriver()

	prior := d.DeriveFromAnalysis(alert.ContentAnalysisResult{IsNsfw: true, NsfwConfidence: 0.8})
	require.True(t, prior.IsAutoQuarantined())

	got := d.ApplyAutoQuarantine(prior, alert.ContentAnalysisResult{QualityScore: 0.9})

	assert.Equal(t, quarantine.ActionNone, got.Action)
	assert.False(t, got.IsQuarantined())
}

func TestApplyManualQuarantine_LastWriteWins(t *testing.T) {
	now := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)

	prior := ApplyManualQuarantine(quarantine.NewState(), QuarantineCommand{
		Action:      quarantine.ActionRemove,
		Reasons:     []quarantine.Reason{quarantine.ReasonViolence},
		ModeratorID: "mod-1",
	}, now)

	later := now.Add(time.Minute)
	got := ApplyManualQuarantine(prior, QuarantineCommand{
		Action:      quarantine.ActionHidePublic,
		Reasons:     []quarantine.Reason{quarantine.ReasonSpam},
		ModeratorID: "mod-2",
	}, later)

	assert.Equal(t, quarantine.ActionHidePublic, got.Action)
	assert.Equal(t, []quarantine.Reason{quarantine.ReasonSpam}, got.Reasons)
	assert.Equal(t, "mod-2", got.ModeratorID)
	require.NotNil(t, got.QuarantinedAt)
	assert.Equal(t, later, *got.QuarantinedAt)
}

func TestApplyManualQuarantine_AccessFlags(t *testing.T) {
	now := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)
	deny := false

	got := ApplyManualQuarantine(quarantine.NewState(), QuarantineCommand{
		Action:              quarantine.ActionRemove,
		ModeratorID:         "mod-1",
		AllowReporterAccess: &deny,
	}, now)

	assert.False(t, got.AllowReporterAccess)
	assert.True(t, got.AllowModeratorAccess)
}

func TestApplyManualQuarantine_NormalizesReasons(t *testing.T) {
	now := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)

	got := ApplyManualQuarantine(quarantine.NewState(), QuarantineCommand{
		Action:      quarantine.ActionHidePublic,
		Reasons:     []quarantine.Reason{quarantine.ReasonSpam, quarantine.ReasonNsfw, quarantine.ReasonSpam},
		ModeratorID: "mod-1",
	}, now)

	assert.Equal(t, []quarantine.Reason{quarantine.ReasonNsfw, quarantine.ReasonSpam}, got.Reasons)
}

func TestApplyApproval(t *testing.T) {
	now := time.Date(2026, 5, 2, 11, 0, 0, 0, time.UTC)

	prior := ApplyManualQuarantine(quarantine.NewState(), QuarantineCommand{
		Action:      quarantine.ActionHidePublic,
		Reasons:     []quarantine.Reason{quarantine.ReasonNsfw},
		ModeratorID: "mod-1",
	}, now.Add(-time.Hour))

	got := ApplyApproval(prior, "mod-7", "Dana", map[string]string{"ticket": "MOD-9"}, now)

	assert.Equal(t, quarantine.ActionApproved, got.Action)
	assert.Empty(t, got.Reasons)
	assert.Equal(t, "mod-7", got.ModeratorID)
	assert.Nil(t, got.QuarantinedAt)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, now, *got.ReviewedAt)
	assert.True(t, got.HasAccess(quarantine.Viewer{IsPublic: true}))
}
