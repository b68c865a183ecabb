package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type CategoryRepository interface {
	ListDefaults(ctx context.Context) ([]domain.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, name string, color *string, userID uuid.UUID) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountExpenses(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
