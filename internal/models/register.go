package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,min=3,max=50"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,min=6,max=72"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`

	// Color preference
	// example: green
	Color string `json:"color,omitempty" validate:"omitempty,oneof=yellow green pink"`

	// Language preference
	// example: en
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en ru de zh es fr ko ja"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Identifier of the created user
	// example: 1
	UserID int64 `json:"user_id"`
}
