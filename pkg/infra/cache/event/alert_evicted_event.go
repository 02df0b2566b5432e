package event

type AlertEvictedEvent struct {
	AlertID string `json:"alert_id"`
}

func (e AlertEvictedEvent) Type() string {
	return AlertEvictedEventType
}
