package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// Status of a sighting within its lifecycle. Only equality matters to this
// subsystem; the values mirror the upstream feed.
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
	StatusExpired  Status = "expired"
)

// Sighting is the underlying content item. The engine treats it as opaque
// beyond its identity and reporter.
type Sighting struct {
	ID           uuid.UUID `json:"id"`
	ReporterID   string    `json:"reporter_id"`
	ReporterName string    `json:"reporter_name,omitempty"`
	Category     string    `json:"category,omitempty"`
	Status       Status    `json:"status"`
	Level        Level     `json:"level"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// EnrichedAlert binds a sighting to its enrichment and quarantine state.
// The Quarantine field is replaced wholesale by the decision engine, never
// mutated in place, so readers always observe a complete state.
type EnrichedAlert struct {
	Sighting   Sighting         `json:"sighting"`
	Enrichment *Enrichment      `json:"enrichment,omitempty"`
	Quarantine quarantine.State `json:"quarantine"`
}

// New wraps a sighting entering the working set with the unrestricted
// default state.
func New(s Sighting) EnrichedAlert {
	return EnrichedAlert{
		Sighting:   s,
		Quarantine: quarantine.NewState(),
	}
}

// WithQuarantine returns a copy of the alert carrying the given state.
func (a EnrichedAlert) WithQuarantine(st quarantine.State) EnrichedAlert {
	a.Quarantine = st
	return a
}

func (a EnrichedAlert) IsQuarantined() bool {
	return a.Quarantine.IsQuarantined()
}

func (a EnrichedAlert) IsHiddenFromPublic() bool {
	return a.Quarantine.IsHiddenFromPublic()
}

func (a EnrichedAlert) IsNsfwQuarantined() bool {
	return a.Quarantine.IsQuarantined() && a.Quarantine.HasReason(quarantine.ReasonNsfw)
}

func (a EnrichedAlert) IsAwaitingReview() bool {
	return a.Quarantine.Action == quarantine.ActionPendingReview
}

func (a EnrichedAlert) IsApproved() bool {
	return a.Quarantine.Action == quarantine.ActionApproved
}

// ContentWarning is the human-readable notice shown in place of quarantined
// content. Empty when the alert is not quarantined.
func (a EnrichedAlert) ContentWarning() string {
	if !a.Quarantine.IsQuarantined() || a.IsApproved() {
		return ""
	}
	if a.IsNsfwQuarantined() {
		return "This sighting may contain explicit material"
	}
	if len(a.Quarantine.Reasons) == 0 {
		return "This sighting is under review"
	}
	labels := make([]string, 0, len(a.Quarantine.Reasons))
	for _, r := range a.Quarantine.Reasons {
		labels = append(labels, r.Label())
	}
	return fmt.Sprintf("This sighting was quarantined: %s", strings.Join(labels, ", "))
}

// IsVisibleTo decides whether the viewer may see this alert. It verifies
// reporter identity against the sighting before trusting the viewer's
// IsReporter flag, and honors an explicit ShowQuarantined opt-in for
// moderators and the matching reporter.
func (a EnrichedAlert) IsVisibleTo(v quarantine.Viewer) bool {
	isReporter := v.IsReporter && v.UserID != "" && v.UserID == a.Sighting.ReporterID
	if v.ShowQuarantined && (v.IsModerator || isReporter) {
		return true
	}
	effective := v
	effective.IsReporter = isReporter
	return a.Quarantine.HasAccess(effective)
}
