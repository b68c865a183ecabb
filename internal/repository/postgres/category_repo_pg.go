package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListDefaults(ctx context.Context) ([]domain.Category, error) {
	const query = `
        SELECT id, name, color, user_id, is_default, created_at
        FROM category
        WHERE user_id IS NULL AND is_default = TRUE
        ORDER BY name
    `
	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	const query = `
        SELECT id, name, color, user_id, is_default, created_at
        FROM category
        WHERE user_id = $1 AND is_default = FALSE
        ORDER BY name
    `
	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const query = `
        SELECT id, name, color, user_id, is_default, created_at
        FROM category
        WHERE id = $1
    `
	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*domain.Category, error) {
	const query = `
        SELECT id, name, color, user_id, is_default, created_at
        FROM category
        WHERE name = $1 AND user_id = $2
    `
	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, name, userID); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string, color *string, userID uuid.UUID) (*domain.Category, error) {
	const query = `
        INSERT INTO category (name, color, user_id, is_default)
        VALUES ($1, $2, $3, FALSE)
        RETURNING id, name, color, user_id, is_default, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, name, color, userID)
	var category domain.Category
	if err := row.StructScan(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
        DELETE FROM category
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *CategoryRepository) CountExpenses(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	const query = `
        SELECT COUNT(*)
        FROM expense
        WHERE category_id = $1
    `
	var count int64
	if err := r.db.GetContext(ctx, &count, query, categoryID); err != nil {
		return 0, err
	}
	return count, nil
}
