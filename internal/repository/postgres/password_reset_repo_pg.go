package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) DeleteAllByEmail(ctx context.Context, email string) error {
	const query = `
        DELETE FROM password_reset_token
        WHERE email = $1
    `
	_, err := r.db.ExecContext(ctx, query, email)
	return err
}

func (r *PasswordResetRepository) Create(ctx context.Context, email, token string, expiresAt time.Time) (*domain.PasswordResetToken, error) {
	const query = `
        INSERT INTO password_reset_token (email, token, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, email, token, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, token, expiresAt)
	var reset domain.PasswordResetToken
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	const query = `
        SELECT id, email, token, expires_at, created_at
        FROM password_reset_token
        WHERE token = $1
    `
	var reset domain.PasswordResetToken
	if err := r.db.GetContext(ctx, &reset, query, token); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `
        DELETE FROM password_reset_token
        WHERE token = $1
    `
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
