package usecase

import (
	"context"

	"streamsync/internal/domain/entity"
)

// RegisterInput holds the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthOutput is returned after a successful registration, login or refresh.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// UserUsecase handles account creation and token issuance.
type UserUsecase interface {
	// Register creates a user with an email/password login and signs them in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues a new token pair.
	Login(ctx context.Context, email, password string) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
}
