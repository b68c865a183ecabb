package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is either a shared default (UserID nil, IsDefault true) or a
// user-owned custom category.
type Category struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Color     *string    `db:"color" json:"color,omitempty"`
	UserID    *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	IsDefault bool       `db:"is_default" json:"is_default"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// VisibleTo reports whether the category may be attached to expenses of
// the given user.
func (c *Category) VisibleTo(userID uuid.UUID) bool {
	return c.UserID == nil || *c.UserID == userID
}
