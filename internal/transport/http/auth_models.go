package http

import "time"

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
}

// AuthUser models the sanitized user representation returned by auth
// endpoints.
type AuthUser struct {
	ID        string    `json:"id" example:"9fd13fd2-63c5-4f29-a210-4a1a8e285f74"`
	Email     string    `json:"email" example:"user@example.com"`
	Name      *string   `json:"name,omitempty" example:"Alice"`
	Currency  string    `json:"currency" example:"USD"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-02T09:30:00Z"`
}

// AuthTokenResponse is returned by the login endpoint.
type AuthTokenResponse struct {
	Token     string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string   `json:"expires_at" example:"2024-01-09T12:00:00Z"`
	User      AuthUser `json:"user"`
}

// RegisterRequest carries registration fields.
type RegisterRequest struct {
	Email    string  `json:"email" example:"user@example.com"`
	Password string  `json:"password" example:"Secret1"`
	Name     *string `json:"name,omitempty" example:"Alice"`
}

// LoginRequest carries login fields.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"Secret1"`
}

// ForgotPasswordRequest captures the payload for requesting a reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// ResetPasswordRequest captures the payload for consuming a reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token" example:"a3f1...64 hex characters...9c"`
	Password string `json:"password" example:"NewPass1"`
}

// UpdateCurrencyRequest carries the 3-letter currency code.
type UpdateCurrencyRequest struct {
	Currency string `json:"currency" example:"EUR"`
}
