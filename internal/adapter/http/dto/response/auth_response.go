package response

import (
	"time"

	"orcafacil/internal/domain/entities"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func FromUserWithToken(u entities.User, token string) AuthResponse {
	return AuthResponse{User: FromUser(u), Token: token}
}
