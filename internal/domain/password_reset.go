package domain

import "time"

// PasswordResetToken is a single-use reset grant. Validity is always
// re-checked against ExpiresAt on read; expired rows may linger until
// superseded by a newer request for the same email.
type PasswordResetToken struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the grant is past its expiry at the given
// instant. A grant whose expiry equals now is already expired.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
