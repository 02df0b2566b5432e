package quarantine

import (
	"sort"
	"time"
)

// State is the moderation decision currently attached to a piece of content.
// States are values: every transition produces a fresh State, existing ones
// are never mutated in place.
type State struct {
	Action       Action   `json:"action"`
	Reasons      []Reason `json:"reasons,omitempty"`
	CustomReason string   `json:"custom_reason,omitempty"`

	// ModeratorID presence is the sole signal that the decision is
	// human-originated. Absent means purely automated.
	ModeratorID   string `json:"moderator_id,omitempty"`
	ModeratorName string `json:"moderator_name,omitempty"`

	QuarantinedAt *time.Time `json:"quarantined_at,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`

	// ConfidenceScore is only meaningful for automated states.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`

	AllowReporterAccess  bool `json:"allow_reporter_access"`
	AllowModeratorAccess bool `json:"allow_moderator_access"`

	// Metadata is an open extension map, not interpreted by the engine.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewState returns the unrestricted default state. Legacy content without
// moderation data loads as this state: absence of a decision means "not
// restricted", never an error.
func NewState() State {
	return State{
		Action:               ActionNone,
		AllowReporterAccess:  true,
		AllowModeratorAccess: true,
	}
}

func (s State) IsQuarantined() bool {
	return s.Action != ActionNone
}

func (s State) IsHiddenFromPublic() bool {
	return s.Action.HidesFromPublic()
}

// IsAutoQuarantined reports whether the state was produced purely by
// automated analysis. Exactly one of IsAutoQuarantined and
// IsManuallyQuarantined holds for any state.
func (s State) IsAutoQuarantined() bool {
	return s.ModeratorID == ""
}

func (s State) IsManuallyQuarantined() bool {
	return s.ModeratorID != ""
}

func (s State) HasReason(r Reason) bool {
	for _, have := range s.Reasons {
		if have == r {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity among the state's reasons, for
// triage ordering. A state without reasons ranks lowest.
func (s State) MaxSeverity() int {
	max := -1
	for _, r := range s.Reasons {
		if sev := r.Severity(); sev > max {
			max = sev
		}
	}
	return max
}

// Clone returns a deep copy. Callers building a derived state should clone
// first so shared reason slices and metadata maps never alias.
func (s State) Clone() State {
	out := s
	if s.Reasons != nil {
		out.Reasons = append([]Reason(nil), s.Reasons...)
	}
	if s.Metadata != nil {
		out.Metadata = make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	if s.QuarantinedAt != nil {
		t := *s.QuarantinedAt
		out.QuarantinedAt = &t
	}
	if s.ReviewedAt != nil {
		t := *s.ReviewedAt
		out.ReviewedAt = &t
	}
	if s.ConfidenceScore != nil {
		c := *s.ConfidenceScore
		out.ConfidenceScore = &c
	}
	return out
}

// NormalizeReasons collapses duplicates and orders by descending severity,
// then lexically, so reason sets compare order-insensitively. A nil or empty
// input normalizes to nil: zero reasons is a well-formed state.
func NormalizeReasons(reasons []Reason) []Reason {
	if len(reasons) == 0 {
		return nil
	}
	seen := make(map[Reason]struct{}, len(reasons))
	out := make([]Reason, 0, len(reasons))
	for _, r := range reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity() != out[j].Severity() {
			return out[i].Severity() > out[j].Severity()
		}
		return out[i] < out[j]
	})
	return out
}
