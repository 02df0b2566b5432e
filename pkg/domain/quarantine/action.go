package quarantine

import "fmt"

// Action is the moderation decision currently applied to a piece of content.
type Action string

const (
	// ActionNone means no moderation action is in effect.
	ActionNone Action = "none"
	// ActionPendingReview provisionally hides content until a human decides.
	ActionPendingReview Action = "pendingReview"
	// ActionHidePublic hides content from public viewers.
	ActionHidePublic Action = "hidePublic"
	// ActionApproved explicitly clears content, overriding any prior hidden state.
	ActionApproved Action = "approved"
	// ActionRemove is the strongest restriction.
	ActionRemove Action = "remove"
)

// Actions returns every known action ordered by increasing restriction intent.
func Actions() []Action {
	return []Action{ActionNone, ActionPendingReview, ActionHidePublic, ActionApproved, ActionRemove}
}

// Restriction ranks actions by restriction intent, for sorting and triage only.
func (a Action) Restriction() int {
	switch a {
	case ActionNone:
		return 0
	case ActionPendingReview:
		return 1
	case ActionHidePublic:
		return 2
	case ActionApproved:
		return 3
	case ActionRemove:
		return 4
	default:
		return 0
	}
}

// HidesFromPublic reports whether the action hides content from public
// viewers by default. Removed content is handled separately by HasAccess:
// it is withheld from everyone but moderators, not just the public.
func (a Action) HidesFromPublic() bool {
	switch a {
	case ActionPendingReview, ActionHidePublic:
		return true
	case ActionNone, ActionApproved, ActionRemove:
		return false
	default:
		return false
	}
}

func (a Action) Valid() bool {
	switch a {
	case ActionNone, ActionPendingReview, ActionHidePublic, ActionApproved, ActionRemove:
		return true
	default:
		return false
	}
}

// ParseAction converts an external string into an Action. An empty string
// parses to ActionNone so that legacy records without moderation data load
// as unrestricted.
func ParseAction(s string) (Action, error) {
	if s == "" {
		return ActionNone, nil
	}
	a := Action(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown quarantine action: %q", s)
	}
	return a, nil
}
