package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, password_hash, name)
        VALUES ($1, $2, $3)
        RETURNING id, email, name, currency, password_hash, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, passwordHash, name)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, name, currency, password_hash, created_at, updated_at
        FROM user_account
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, name, currency, password_hash, created_at, updated_at
        FROM user_account
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
        UPDATE user_account
        SET password_hash = $2,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

func (r *UserRepository) UpdateCurrency(ctx context.Context, id uuid.UUID, currency string) (*domain.User, error) {
	const query = `
        UPDATE user_account
        SET currency = $2,
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, email, name, currency, password_hash, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, id, currency)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
