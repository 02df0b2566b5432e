package response

import (
	"github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// AlertOutput is the sanctioned read surface for quarantine status: derived
// booleans and the content warning, never the raw access rule.
type AlertOutput struct {
	Sighting       alert.Sighting   `json:"sighting"`
	Quarantine     quarantine.State `json:"quarantine"`
	Quarantined    bool             `json:"quarantined"`
	HiddenPublicly bool             `json:"hidden_from_public"`
	AwaitingReview bool             `json:"awaiting_review"`
	Approved       bool             `json:"approved"`
	ContentWarning string           `json:"content_warning,omitempty"`
}

func FromAlert(a alert.EnrichedAlert) AlertOutput {
	return AlertOutput{
		Sighting:       a.Sighting,
		Quarantine:     a.Quarantine,
		Quarantined:    a.IsQuarantined(),
		HiddenPublicly: a.IsHiddenFromPublic(),
		AwaitingReview: a.IsAwaitingReview(),
		Approved:       a.IsApproved(),
		ContentWarning: a.ContentWarning(),
	}
}

func FromAlerts(alerts []alert.EnrichedAlert) []AlertOutput {
	out := make([]AlertOutput, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, FromAlert(a))
	}
	return out
}
