package event

import "reflect"

type Event interface {
	Type() string
}

var (
	AlertQuarantinedEventType  = "AlertQuarantinedEvent"
	AlertApprovedEventType     = "AlertApprovedEvent"
	AlertReclassifiedEventType = "AlertReclassifiedEvent"
	AlertEvictedEventType      = "AlertEvictedEvent"
)

var Registry = map[string]reflect.Type{
	AlertQuarantinedEventType:  reflect.TypeOf(AlertQuarantinedEvent{}),
	AlertApprovedEventType:     reflect.TypeOf(AlertApprovedEvent{}),
	AlertReclassifiedEventType: reflect.TypeOf(AlertReclassifiedEvent{}),
	AlertEvictedEventType:      reflect.TypeOf(AlertEvictedEvent{}),
}
