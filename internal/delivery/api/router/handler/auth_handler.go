package handler

import (
	"log/slog"
	"net/http"

	"streamsync/internal/delivery/api/middleware"
	"streamsync/internal/delivery/api/response"
	"streamsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves account registration and token issuance.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register creates an account and returns a token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Me echoes the identity carried by the caller's access token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   middleware.GetRoles(c),
	})
}
