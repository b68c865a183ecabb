package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type ExpenseRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ExpenseFilter) ([]domain.Expense, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
	Create(ctx context.Context, userID, categoryID uuid.UUID, amount float64, description *string, date time.Time) (*domain.Expense, error)
	Update(ctx context.Context, id, categoryID uuid.UUID, amount float64, description *string, date time.Time) (*domain.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error)
	CategoryTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryTotal, error)
	DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyTotal, error)
}
