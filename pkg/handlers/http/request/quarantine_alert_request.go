package request

type QuarantineAlertRequest struct {
	Action               string            `json:"action"`
	Reasons              []string          `json:"reasons,omitempty"`
	CustomReason         string            `json:"custom_reason,omitempty"`
	ModeratorID          string            `json:"moderator_id,omitempty"`
	ModeratorName        string            `json:"moderator_name,omitempty"`
	AllowReporterAccess  *bool             `json:"allow_reporter_access,omitempty"`
	AllowModeratorAccess *bool             `json:"allow_moderator_access,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
}
