package entity

// EventKind discriminates the two interaction shapes a chat surface delivers.
type EventKind string

const (
	EventCommand  EventKind = "command"  // slash command typed by the learner
	EventCallback EventKind = "callback" // button press carrying a payload
)

// Event is a single inbound interaction from the chat surface. Payload is the
// opaque callback string for button presses, or the command text (including
// the leading slash) for commands.
type Event struct {
	Learner int64     `json:"learner_id"`
	Kind    EventKind `json:"kind"`
	Payload string    `json:"payload"`
}
