package channel

type Channel string

const (
	// ModerationEventsChannel fans quarantine decisions out to other
	// replicas and the alert push pipeline.
	ModerationEventsChannel Channel = "moderation:events"
)
