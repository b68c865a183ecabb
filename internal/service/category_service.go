package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/repository/ports"
)

var (
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is being used by expenses")
)

type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns the shared default categories followed by the user's
// custom ones.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	defaults, err := s.categories.ListDefaults(ctx)
	if err != nil {
		return nil, err
	}
	custom, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append(defaults, custom...), nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name string, color *string) (*domain.Category, error) {
	if _, err := s.categories.FindByNameAndUser(ctx, name, userID); err == nil {
		return nil, ErrCategoryExists
	} else if !isNotFound(err) {
		return nil, err
	}

	category, err := s.categories.Create(ctx, name, color, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// Delete removes a custom category owned by the user. Default
// categories and categories still referenced by expenses stay.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if isNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	if category.IsDefault || category.UserID == nil || *category.UserID != userID {
		return ErrCategoryNotFound
	}

	count, err := s.categories.CountExpenses(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categories.Delete(ctx, categoryID)
}
