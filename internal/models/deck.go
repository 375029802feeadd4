package models

// DeckDB represents a deck row. UserID is nil for shared (guest) decks.
type DeckDB struct {
	DeckID int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	UserID *int64 `json:"user_id" db:"user_id"`
}

// CardDB represents a card row.
type CardDB struct {
	CardID int64  `json:"id" db:"id"`
	Entry  string `json:"entry" db:"entry"`
	Value  string `json:"value" db:"value"`
	DeckID int64  `json:"deck_id" db:"deck_id"`
}

// CardInput is an (entry, value) pair supplied by a client or a spreadsheet.
type CardInput struct {
	Entry string `json:"entry"`
	Value string `json:"value"`
}

// UserProgressDB represents one user's learned state for one card.
type UserProgressDB struct {
	ProgressID int64 `json:"id" db:"id"`
	UserID     int64 `json:"user_id" db:"user_id"`
	CardID     int64 `json:"card_id" db:"card_id"`
	DeckID     int64 `json:"deck_id" db:"deck_id"`
	Learned    bool  `json:"learned" db:"learned"`
}

// Stats summarises a user's progress in a deck.
type Stats struct {
	Total   int `json:"total"`
	Learned int `json:"learned"`
}

// StudyStats extends Stats with the number of cards left in the session.
// Remain is nil once no card matches.
type StudyStats struct {
	Stats
	Remain *int `json:"remain"`
}

// StudyCard is the card served by a study session.
type StudyCard struct {
	CardID  int64  `json:"id"`
	Entry   string `json:"entry"`
	Value   string `json:"value"`
	Learned bool   `json:"learned"`
}

// NextCard is the outcome of a next-card request.
type NextCard struct {
	Card  *StudyCard `json:"card"`
	Stats StudyStats `json:"stats"`
}

// ToggleResult is the outcome of flipping a card's learned flag.
type ToggleResult struct {
	Learned bool  `json:"learned"`
	Stats   Stats `json:"stats"`
}
