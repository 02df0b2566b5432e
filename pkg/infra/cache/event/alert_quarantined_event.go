package event

type AlertQuarantinedEvent struct {
	AlertID      string   `json:"alert_id"`
	Action       string   `json:"action"`
	Reasons      []string `json:"reasons,omitempty"`
	ModeratorID  string   `json:"moderator_id,omitempty"`
	CustomReason string   `json:"custom_reason,omitempty"`
}

func (e AlertQuarantinedEvent) Type() string {
	return AlertQuarantinedEventType
}
