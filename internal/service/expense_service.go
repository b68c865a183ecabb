package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/repository/ports"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService struct {
	expenses   ports.ExpenseRepository
	categories ports.CategoryRepository
}

func NewExpenseService(expenses ports.ExpenseRepository, categories ports.CategoryRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses, categories: categories}
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	return s.expenses.ListByUser(ctx, userID, filter)
}

func (s *ExpenseService) Create(ctx context.Context, userID, categoryID uuid.UUID, amount float64, description *string, date *time.Time) (*domain.Expense, error) {
	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	when := time.Now()
	if date != nil {
		when = *date
	}
	return s.expenses.Create(ctx, userID, categoryID, amount, description, when)
}

func (s *ExpenseService) Update(ctx context.Context, userID, expenseID, categoryID uuid.UUID, amount float64, description *string, date *time.Time) (*domain.Expense, error) {
	existing, err := s.findOwned(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	when := existing.Date
	if date != nil {
		when = *date
	}
	return s.expenses.Update(ctx, expenseID, categoryID, amount, description, when)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, expenseID); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, expenseID)
}

// findOwned treats another user's expense the same as a missing one.
func (s *ExpenseService) findOwned(ctx context.Context, userID, expenseID uuid.UUID) (*domain.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	if expense.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// checkCategory verifies the category exists and is a default or one of
// the user's own; anything else reads as not found.
func (s *ExpenseService) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if isNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	if !category.VisibleTo(userID) {
		return ErrCategoryNotFound
	}
	return nil
}
