package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, name *string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateCurrency(ctx context.Context, id uuid.UUID, currency string) (*domain.User, error)
}
