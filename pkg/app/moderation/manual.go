package moderation

import (
	"time"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// QuarantineCommand carries the fields of a manual moderation decision.
// Empty reasons, custom reason or moderator identity are all permitted;
// validation, if any, belongs to the calling layer.
type QuarantineCommand struct {
	Action               quarantine.Action
	Reasons              []quarantine.Reason
	CustomReason         string
	ModeratorID          string
	ModeratorName        string
	AllowReporterAccess  *bool
	AllowModeratorAccess *bool
	Metadata             map[string]string
}

// ApplyManualQuarantine builds the state resulting from a moderator decision.
// It deliberately does not consult current: a human decision supersedes
// whatever was there, including a prior human decision (last write wins).
// The parameter exists so call sites read as a transition.
func ApplyManualQuarantine(current quarantine.State, cmd QuarantineCommand, now time.Time) quarantine.State {
	_ = current

	st := quarantine.NewState()
	st.Action = cmd.Action
	st.Reasons = quarantine.NormalizeReasons(cmd.Reasons)
	st.CustomReason = cmd.CustomReason
	st.ModeratorID = cmd.ModeratorID
	st.ModeratorName = cmd.ModeratorName
	st.QuarantinedAt = &now
	if cmd.AllowReporterAccess != nil {
		st.AllowReporterAccess = *cmd.AllowReporterAccess
	}
	if cmd.AllowModeratorAccess != nil {
		st.AllowModeratorAccess = *cmd.AllowModeratorAccess
	}
	if len(cmd.Metadata) > 0 {
		st.Metadata = make(map[string]string, len(cmd.Metadata))
		for k, v := range cmd.Metadata {
			st.Metadata[k] = v
		}
	}
	return st
}

// ApplyApproval clears the content: a manual approved state with no reasons.
// Approval always grants public visibility regardless of prior automated
// findings.
func ApplyApproval(current quarantine.State, moderatorID, moderatorName string, metadata map[string]string, now time.Time) quarantine.State {
	st := ApplyManualQuarantine(current, QuarantineCommand{
		Action:        quarantine.ActionApproved,
		ModeratorID:   moderatorID,
		ModeratorName: moderatorName,
		Metadata:      metadata,
	}, now)
	st.QuarantinedAt = nil
	st.ReviewedAt = &now
	return st
}
