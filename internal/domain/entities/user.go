package entities

import "time"

// User is an account record persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
