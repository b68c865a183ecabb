package domain

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	CategoryID  uuid.UUID `db:"category_id" json:"category_id"`
	Amount      float64   `db:"amount" json:"amount"`
	Description *string   `db:"description" json:"description,omitempty"`
	Date        time.Time `db:"date" json:"date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	Category    *Category `db:"-" json:"category,omitempty"`
}

// ExpenseFilter narrows expense listings. Zero-valued fields are ignored.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// CategoryTotal is one slice of the dashboard category breakdown.
type CategoryTotal struct {
	CategoryID uuid.UUID `db:"category_id" json:"category_id"`
	Name       string    `db:"name" json:"name"`
	Color      *string   `db:"color" json:"color,omitempty"`
	Amount     float64   `db:"amount" json:"amount"`
}

// DailyTotal is the summed spend for one calendar day.
type DailyTotal struct {
	Day    time.Time `db:"day" json:"day"`
	Amount float64   `db:"amount" json:"amount"`
}
