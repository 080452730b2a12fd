package models

// User defines the user model based on the 'users' table
type User struct {
	ID             int64   `json:"id" db:"id" example:"1"`                         // Unique identifier for the user
	Email          string  `json:"email" db:"email" example:"user@example.com"`    // User's email address (unique)
	HashedPassword string  `json:"-" db:"hashed_password"`                         // Bcrypt hash (excluded from JSON)
	FullName       *string `json:"full_name,omitempty" db:"full_name"`             // Display name (nullable)
	IsActive       bool    `json:"is_active" db:"is_active" example:"true"`        // Whether the account is active
	IsSuperuser    bool    `json:"is_superuser" db:"is_superuser" example:"false"` // Whether the account has administrative privileges
}
