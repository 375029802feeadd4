package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID         int64    `json:"id" db:"id"`             // Primary key
	Username       string   `json:"username" db:"username"` // Unique username
	Email          string   `json:"email" db:"email"`       // Unique email
	Color          Color    `json:"color" db:"color"`       // UI color preference
	Language       Language `json:"language" db:"language"` // UI language preference
	HashedPassword string   `json:"-" db:"hashed_password"` // bcrypt hash
}

// Profile returns the public view of the user.
func (u *UserDB) Profile() ProfileResponse {
	return ProfileResponse{
		Username: u.Username,
		Color:    u.Color.String(),
		Language: u.Language.String(),
	}
}
