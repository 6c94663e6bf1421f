package auth

import "github.com/bintangpramudya/kasirpay-backend/internal/users"

// LoginRequest carries the credentials posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse pairs the password-free user with a fresh access token.
type LoginResponse struct {
	User        *users.UserDTO `json:"user"`
	AccessToken string         `json:"access_token"`
}

// RegisterRequest carries the payload posted to /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse returns the created user without credentials.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`
}
