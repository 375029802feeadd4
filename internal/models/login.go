package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Access token
	// example: ACCESS_JWT
	Access string `json:"access"`

	// Refresh token
	// example: REFRESH_JWT
	Refresh string `json:"refresh"`
}

// RefreshRequest represents the JSON body for refreshing an access token
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	// example: REFRESH_JWT
	Refresh string `json:"refresh"`
}

// RefreshResponse represents a refreshed access token
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Access token
	// example: ACCESS_JWT
	Access string `json:"access"`
}
