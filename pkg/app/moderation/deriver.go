package moderation

import (
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// Thresholds configure automatic derivation. MisleadingConfidence is accepted
// for interface symmetry but the analysis result carries no misleading
// confidence to compare against; the boolean flag alone decides.
type Thresholds struct {
	NsfwConfidence       float64 `mapstructure:"nsfw_confidence"`
	MisleadingConfidence float64 `mapstructure:"misleading_confidence"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		NsfwConfidence:       0.7,
		MisleadingConfidence: 0.8,
	}
}

// Deriver turns an automated analysis verdict into a quarantine state.
type Deriver interface {
	DeriveFromAnalysis(analysis alert.ContentAnalysisResult) quarantine.State
	ApplyAutoQuarantine(current quarantine.State, analysis alert.ContentAnalysisResult) quarantine.State
}

type deriver struct {
	logger     *logrus.Logger
	thresholds Thresholds
}

func NewDeriver(logger *logrus.Logger, thresholds Thresholds) Deriver {
	return &deriver{
		logger:     logger,
		thresholds: thresholds,
	}
}

// DeriveFromAnalysis is pure and idempotent: the same analysis always yields
// the same state. It never sets a moderator identity or a timestamp, so the
// result is recognizably automated.
func (d *deriver) DeriveFromAnalysis(a alert.ContentAnalysisResult) quarantine.State {
	st := quarantine.NewState()
	switch {
	case a.IsNsfw && a.NsfwConfidence >= d.thresholds.NsfwConfidence:
		st.Action = quarantine.ActionHidePublic
		st.Reasons = quarantine.NormalizeReasons([]quarantine.Reason{quarantine.ReasonNsfw})
		confidence := a.NsfwConfidence
		st.ConfidenceScore = &confidence
	case a.IsPotentiallyMisleading:
		st.Action = quarantine.ActionPendingReview
		st.Reasons = quarantine.NormalizeReasons([]quarantine.Reason{quarantine.ReasonMisinformation})
	}
	return st
}

// ApplyAutoQuarantine re-runs derivation against an existing state. A human
// decision always wins: when the current state is manually quarantined the
// analysis is discarded and the current state returned unchanged.
func (d *deriver) ApplyAutoQuarantine(current quarantine.State, a alert.ContentAnalysisResult) quarantine.State {
	if current.IsManuallyQuarantined() {
		return current
	}
	return d.DeriveFromAnalysis(a)
}
