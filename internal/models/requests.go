package models

// DeckRequest represents the JSON body for creating or renaming a deck
// swagger:model DeckRequest
type DeckRequest struct {
	// Deck name
	// required: true
	// example: Spanish
	Name string `json:"name" validate:"required"`
}

// DeckResponse represents a deck
// swagger:model DeckResponse
type DeckResponse struct {
	// example: 1
	DeckID int64 `json:"id"`
	// example: Spanish
	Name string `json:"name"`
}

// CardsRequest represents the JSON body for replacing a deck's cards
// swagger:model CardsRequest
type CardsRequest struct {
	Cards []CardInput `json:"cards" validate:"required"`
}

// CardsResponse represents a deck's cards
// swagger:model CardsResponse
type CardsResponse struct {
	Cards []CardInput `json:"cards"`
}

// NextCardRequest represents the JSON body for requesting the next study card
// swagger:model NextCardRequest
type NextCardRequest struct {
	// Study mode
	// required: true
	// example: unlearned
	Mode StudyMode `json:"mode" validate:"required,oneof=learned unlearned all"`

	// Card ids already served in this session
	Exclude []int64 `json:"exclude" validate:"max=10000,dive,min=1,max=2147483647"`
}

// ToggleLearnedRequest represents the JSON body for toggling a card's learned flag
// swagger:model ToggleLearnedRequest
type ToggleLearnedRequest struct {
	// required: true
	// example: 42
	CardID int64 `json:"card_id" validate:"required,min=1,max=2147483647"`
}

// StatusResponse acknowledges a mutation
// swagger:model StatusResponse
type StatusResponse struct {
	// example: true
	Status bool `json:"status"`
}
