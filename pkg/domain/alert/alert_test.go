package alert

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

func newTestAlert() EnrichedAlert {
	return New(Sighting{
		ID:         uuid.New(),
		ReporterID: "reporter-1",
		Category:   "light",
		Status:     StatusActive,
		Level:      LevelMedium,
		Verified:   true,
		CreatedAt:  time.Now(),
	})
}

func quarantined(action quarantine.Action, reasons ...quarantine.Reason) EnrichedAlert {
	a := newTestAlert()
	st := quarantine.NewState()
	st.Action = action
	st.Reasons = quarantine.NormalizeReasons(reasons)
	return a.WithQuarantine(st)
}

func TestNew_DefaultsToUnrestricted(t *testing.T) {
	a := newTestAlert()

	assert.False(t, a.IsQuarantined())
	assert.False(t, a.IsHiddenFromPublic())
	assert.False(t, a.IsAwaitingReview())
	assert.False(t, a.IsApproved())
	assert.Empty(t, a.ContentWarning())
}

func TestEnrichedAlert_DerivedPredicates(t *testing.T) {
	a := quarantined(quarantine.ActionHidePublic, quarantine.ReasonNsfw)
	assert.True(t, a.IsQuarantined())
	assert.True(t, a.IsHiddenFromPublic())
	assert.True(t, a.IsNsfwQuarantined())

	pending := quarantined(quarantine.ActionPendingReview, quarantine.ReasonMisinformation)
	assert.True(t, pending.IsAwaitingReview())
	assert.False(t, pending.IsNsfwQuarantined())

	approved := quarantined(quarantine.ActionApproved)
	assert.True(t, approved.IsApproved())
	assert.False(t, approved.IsHiddenFromPublic())
}

func TestContentWarning_DistinguishesNsfw(t *testing.T) {
	nsfw := quarantined(quarantine.ActionHidePublic, quarantine.ReasonNsfw)
	assert.Contains(t, nsfw.ContentWarning(), "explicit")

	generic := quarantined(quarantine.ActionHidePublic, quarantine.ReasonSpam, quarantine.ReasonHoax)
	assert.Contains(t, generic.ContentWarning(), "quarantined")
	assert.Contains(t, generic.ContentWarning(), "Spam")
	assert.Contains(t, generic.ContentWarning(), "Hoax")

	approved := quarantined(quarantine.ActionApproved)
	assert.Empty(t, approved.ContentWarning())
}

func TestIsVisibleTo_Roles(t *testing.T) {
	a := quarantined(quarantine.ActionHidePublic, quarantine.ReasonNsfw)

	assert.False(t, a.IsVisibleTo(quarantine.Viewer{IsPublic: true}))
	assert.True(t, a.IsVisibleTo(quarantine.Viewer{IsModerator: true}))
	assert.True(t, a.IsVisibleTo(quarantine.Viewer{IsReporter: true, UserID: "reporter-1"}))
	assert.False(t, a.IsVisibleTo(quarantine.Viewer{IsReporter: true, UserID: "someone-else"}))
}

func TestIsVisibleTo_ReporterFlagWithoutIdentityDenied(t *testing.T) {
	a := quarantined(quarantine.ActionHidePublic, quarantine.ReasonNsfw)

	// A reporter claim with no user id cannot be verified against the
	// sighting, so it grants nothing.
	assert.False(t, a.IsVisibleTo(quarantine.Viewer{IsReporter: true}))
}

func TestIsVisibleTo_ShowQuarantinedOptIn(t *testing.T) {
	a := quarantined(quarantine.ActionRemove, quarantine.ReasonViolence)

	assert.True(t, a.IsVisibleTo(quarantine.Viewer{IsModerator: true, ShowQuarantined: true}))
	// The explicit opt-in grants the verified reporter access even to
	// removed content, but never helps an unrelated viewer.
	assert.True(t, a.IsVisibleTo(quarantine.Viewer{IsReporter: true, UserID: "reporter-1", ShowQuarantined: true}))
	assert.False(t, a.IsVisibleTo(quarantine.Viewer{IsPublic: true, ShowQuarantined: true}))
	assert.False(t, a.IsVisibleTo(quarantine.Viewer{IsReporter: true, UserID: "someone-else", ShowQuarantined: true}))
}

func TestLevel_Ordering(t *testing.T) {
	assert.True(t, LevelCritical.AtLeast(LevelLow))
	assert.True(t, LevelMedium.AtLeast(LevelMedium))
	assert.False(t, LevelLow.AtLeast(LevelHigh))
	assert.False(t, Level("cosmic").Valid())
}
