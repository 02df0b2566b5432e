package alert

import "github.com/ufobeep/quarantine/pkg/domain/quarantine"

// Filter selects alerts for a listing. Zero-valued criteria are skipped.
type Filter struct {
	Category     string
	Status       Status
	MinLevel     Level
	VerifiedOnly bool

	// IncludeQuarantined bypasses the visibility check entirely; otherwise
	// visibility is derived from the viewer context below.
	IncludeQuarantined bool
	IsPublicContext    bool
	UserID             string
	IsModerator        bool
}

// Viewer translates the filter's context into the visibility predicate's
// viewer. The reporter flag is speculative here; IsVisibleTo verifies it
// against each alert's reporter.
func (f Filter) Viewer() quarantine.Viewer {
	return quarantine.Viewer{
		IsPublic:    f.IsPublicContext,
		IsReporter:  f.UserID != "",
		IsModerator: f.IsModerator,
		UserID:      f.UserID,
	}
}

// MatchesFilter is the conjunction of category, status, minimum level,
// verified-only and visibility. Visibility runs last so that a category or
// status mismatch is diagnosable independent of quarantine state.
func (a EnrichedAlert) MatchesFilter(f Filter) bool {
	if f.Category != "" && a.Sighting.Category != f.Category {
		return false
	}
	if f.Status != "" && a.Sighting.Status != f.Status {
		return false
	}
	if f.MinLevel != "" && !a.Sighting.Level.AtLeast(f.MinLevel) {
		return false
	}
	if f.VerifiedOnly && !a.Sighting.Verified {
		return false
	}
	if f.IncludeQuarantined {
		return true
	}
	return a.IsVisibleTo(f.Viewer())
}
