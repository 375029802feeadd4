package models

// Progress event operations
const (
	ProgressOpServed  = "served"
	ProgressOpToggled = "toggled"
	ProgressOpReset   = "reset"
)

// ProgressEvent describes a change of study progress published to Kafka.
type ProgressEvent struct {
	EventID   string `json:"event_id"`          // EventID is a unique identifier of the event.
	Timestamp int64  `json:"timestamp"`         // Timestamp is the Unix time (seconds) of the change.
	UserID    int64  `json:"user_id"`           // UserID is the learner.
	DeckID    int64  `json:"deck_id"`           // DeckID is the studied deck.
	CardID    int64  `json:"card_id,omitempty"` // CardID is empty for deck-wide operations.
	Operation string `json:"operation"`         // Operation is one of served, toggled, reset.
	Learned   bool   `json:"learned"`           // Learned is the card state after the change.
}
