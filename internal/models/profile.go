package models

// ProfileResponse represents the current user's profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// example: john_doe
	Username string `json:"username"`
	// example: yellow
	Color string `json:"color"`
	// example: en
	Language string `json:"language"`
}

// ProfileUpdateRequest represents the JSON body for updating preferences
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// required: true
	// example: pink
	Color string `json:"color" validate:"required,oneof=yellow green pink"`
	// required: true
	// example: de
	Language string `json:"language" validate:"required,oneof=en ru de zh es fr ko ja"`
}
