package event

// EventSchemaVersion is stamped on every event built with New
const EventSchemaVersion = "1.0"

const (
	LogMsgPublishFailed      = "Event publish failed"
	LogMsgHandlerErrorFormat = "%d subscriber(s) failed on %s: %v"
)
