package ports

import (
	"context"
	"time"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type PasswordResetRepository interface {
	// DeleteAllByEmail removes every outstanding grant for the email.
	// Idempotent; a no-op when none exist.
	DeleteAllByEmail(ctx context.Context, email string) error
	Create(ctx context.Context, email, token string, expiresAt time.Time) (*domain.PasswordResetToken, error)
	FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	DeleteByToken(ctx context.Context, token string) error
}
