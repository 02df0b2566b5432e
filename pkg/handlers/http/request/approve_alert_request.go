package request

type ApproveAlertRequest struct {
	ModeratorID   string            `json:"moderator_id"`
	ModeratorName string            `json:"moderator_name,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
