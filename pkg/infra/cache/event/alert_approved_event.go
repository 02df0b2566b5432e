package event

type AlertApprovedEvent struct {
	AlertID       string `json:"alert_id"`
	ModeratorID   string `json:"moderator_id"`
	ModeratorName string `json:"moderator_name,omitempty"`
}

func (e AlertApprovedEvent) Type() string {
	return AlertApprovedEventType
}
