package event

type AlertReclassifiedEvent struct {
	AlertID    string   `json:"alert_id"`
	Action     string   `json:"action"`
	Reasons    []string `json:"reasons,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

func (e AlertReclassifiedEvent) Type() string {
	return AlertReclassifiedEventType
}
