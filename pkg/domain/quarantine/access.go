package quarantine

// Viewer describes who is asking to see a piece of content. The caller is
// responsible for establishing the role flags; in particular IsReporter must
// only be set after verifying the viewer actually submitted the content
// (EnrichedAlert.IsVisibleTo re-derives that check from the alert itself).
type Viewer struct {
	IsPublic    bool
	IsReporter  bool
	IsModerator bool
	UserID      string

	// ShowQuarantined is an explicit opt-in by a privileged viewer to see
	// quarantined content regardless of the default restriction.
	ShowQuarantined bool
}

// HasAccess decides whether the viewer may see content in this state. This
// predicate is the single access rule for quarantined content; no other
// layer re-implements it.
func (s State) HasAccess(v Viewer) bool {
	switch s.Action {
	case ActionNone, ActionApproved:
		return true
	case ActionRemove:
		// Removed content is withheld from everyone, reporters included.
		// Only moderators retain access, and only while the state allows it.
		return v.IsModerator && s.AllowModeratorAccess
	case ActionPendingReview, ActionHidePublic:
		if v.IsModerator && s.AllowModeratorAccess {
			return true
		}
		if v.IsReporter && s.AllowReporterAccess {
			return true
		}
		return false
	default:
		return false
	}
}
