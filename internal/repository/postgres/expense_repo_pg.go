package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type ExpenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepo(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// expenseRow flattens the expense join onto its category for StructScan.
type expenseRow struct {
	domain.Expense
	CategoryName      string     `db:"category_name"`
	CategoryColor     *string    `db:"category_color"`
	CategoryUserID    *uuid.UUID `db:"category_user_id"`
	CategoryIsDefault bool       `db:"category_is_default"`
}

func (row *expenseRow) toExpense() domain.Expense {
	expense := row.Expense
	expense.Category = &domain.Category{
		ID:        expense.CategoryID,
		Name:      row.CategoryName,
		Color:     row.CategoryColor,
		UserID:    row.CategoryUserID,
		IsDefault: row.CategoryIsDefault,
	}
	return expense
}

const expenseSelect = `
        SELECT e.id, e.user_id, e.category_id, e.amount, e.description, e.date,
               e.created_at, e.updated_at,
               c.name AS category_name, c.color AS category_color,
               c.user_id AS category_user_id, c.is_default AS category_is_default
        FROM expense e
        JOIN category c ON c.id = e.category_id
`

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	var sb strings.Builder
	sb.WriteString(expenseSelect)
	sb.WriteString(" WHERE e.user_id = $1")

	args := []any{userID}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		sb.WriteString(" AND e.date >= $" + strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		sb.WriteString(" AND e.date <= $" + strconv.Itoa(len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		sb.WriteString(" AND e.category_id = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY e.date DESC")

	rows := []expenseRow{}
	if err := r.db.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, err
	}
	expenses := make([]domain.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, rows[i].toExpense())
	}
	return expenses, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	query := expenseSelect + " WHERE e.id = $1"
	var row expenseRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	expense := row.toExpense()
	return &expense, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, userID, categoryID uuid.UUID, amount float64, description *string, date time.Time) (*domain.Expense, error) {
	const query = `
        INSERT INTO expense (user_id, category_id, amount, description, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id uuid.UUID
	if err := r.db.GetContext(ctx, &id, query, userID, categoryID, amount, description, date); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ExpenseRepository) Update(ctx context.Context, id, categoryID uuid.UUID, amount float64, description *string, date time.Time) (*domain.Expense, error) {
	const query = `
        UPDATE expense
        SET category_id = $2,
            amount = $3,
            description = $4,
            date = $5,
            updated_at = NOW()
        WHERE id = $1
        RETURNING id
    `
	var updated uuid.UUID
	if err := r.db.GetContext(ctx, &updated, query, id, categoryID, amount, description, date); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, updated)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
        DELETE FROM expense
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *ExpenseRepository) SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	const query = `
        SELECT COALESCE(SUM(amount), 0)
        FROM expense
        WHERE user_id = $1 AND date >= $2 AND date <= $3
    `
	var total float64
	if err := r.db.GetContext(ctx, &total, query, userID, from, to); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ExpenseRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryTotal, error) {
	const query = `
        SELECT e.category_id, c.name, c.color, SUM(e.amount) AS amount
        FROM expense e
        JOIN category c ON c.id = e.category_id
        WHERE e.user_id = $1 AND e.date >= $2 AND e.date <= $3
        GROUP BY e.category_id, c.name, c.color
        ORDER BY amount DESC
    `
	totals := []domain.CategoryTotal{}
	if err := r.db.SelectContext(ctx, &totals, query, userID, from, to); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *ExpenseRepository) DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyTotal, error) {
	const query = `
        SELECT date_trunc('day', date) AS day, SUM(amount) AS amount
        FROM expense
        WHERE user_id = $1 AND date >= $2 AND date <= $3
        GROUP BY day
        ORDER BY day
    `
	totals := []domain.DailyTotal{}
	if err := r.db.SelectContext(ctx, &totals, query, userID, from, to); err != nil {
		return nil, err
	}
	return totals, nil
}
