package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spendwise-app/spendwise-api/internal/repository/ports"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

// ErrInvalidOrExpiredToken covers never-existed, already-consumed and
// expired grants alike.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

// PasswordResetSender delivers the reset link out of band.
type PasswordResetSender interface {
	SendPasswordReset(ctx context.Context, email, resetLink string) error
}

// PasswordResetService issues and consumes single-use reset grants.
type PasswordResetService struct {
	users   ports.UserRepository
	resets  ports.PasswordResetRepository
	hasher  *util.PasswordHasher
	mailer  PasswordResetSender
	baseURL string
	ttl     time.Duration
}

func NewPasswordResetService(
	users ports.UserRepository,
	resets ports.PasswordResetRepository,
	hasher *util.PasswordHasher,
	mailer PasswordResetSender,
	frontendBaseURL string,
	ttl time.Duration,
) *PasswordResetService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PasswordResetService{
		users:   users,
		resets:  resets,
		hasher:  hasher,
		mailer:  mailer,
		baseURL: strings.TrimRight(frontendBaseURL, "/"),
		ttl:     ttl,
	}
}

// RequestReset issues a fresh grant for the email, superseding any
// outstanding ones. It returns (token, nil) for known emails and
// ("", nil) for unknown ones; the caller must answer identically in
// both cases and may surface the token only in development mode.
// Persistence failures are returned; only a failed mail delivery is
// swallowed, since the grant is already live by then.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}

	if err := s.resets.DeleteAllByEmail(ctx, email); err != nil {
		return "", err
	}

	token, err := util.GenerateResetToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(s.ttl)
	if _, err := s.resets.Create(ctx, email, token, expiresAt); err != nil {
		return "", err
	}

	if s.mailer != nil {
		link := s.baseURL + "/reset-password?token=" + token
		if err := s.mailer.SendPasswordReset(ctx, email, link); err != nil {
			// The grant is already stored; delivery failure is not fatal.
			log.Printf("password reset: send mail to %q: %v", email, err)
		}
	}

	return token, nil
}

// ConfirmReset consumes a grant: validity check, then password update,
// then grant deletion, strictly in that order.
func (s *PasswordResetService) ConfirmReset(ctx context.Context, token, newPassword string) error {
	grant, err := s.resets.FindByToken(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	if grant.Expired(time.Now()) {
		return ErrInvalidOrExpiredToken
	}

	user, err := s.users.FindByEmail(ctx, grant.Email)
	if err != nil {
		if isNotFound(err) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	return s.resets.DeleteByToken(ctx, token)
}
