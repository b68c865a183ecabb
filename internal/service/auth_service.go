package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
	"github.com/spendwise-app/spendwise-api/internal/repository/ports"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

var (
	// ErrEmailTaken is disclosed to the caller; registration is not
	// enumeration-sensitive.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration, login and bearer-token resolution.
type AuthService struct {
	users  ports.UserRepository
	hasher *util.PasswordHasher
	jwt    *util.JWTManager
}

func NewAuthService(users ports.UserRepository, hasher *util.PasswordHasher, jwtManager *util.JWTManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, jwt: jwtManager}
}

// Register creates a new user. It does not issue a session token;
// registration and login are separate steps.
func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*domain.User, error) {
	email = strings.TrimSpace(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, hash, name)
	if err != nil {
		// Lost a race with a concurrent registration for the same email.
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password return the identical error; the password is
// still hashed-checked against a dummy digest in the unknown-email case
// so the two paths cost the same.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			s.hasher.Verify(password, dummyDigest)
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Authenticate resolves a bearer token to its user. Every failure
// (forged, expired, malformed, user gone) is ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// UpdateCurrency stores the user's display-currency preference.
func (s *AuthService) UpdateCurrency(ctx context.Context, userID uuid.UUID, currency string) (*domain.User, error) {
	user, err := s.users.UpdateCurrency(ctx, userID, strings.ToUpper(currency))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// dummyDigest keeps the unknown-email login path doing the same bcrypt
// work as the wrong-password path.
var dummyDigest = func() string {
	hasher := util.NewPasswordHasher(0)
	digest, err := hasher.Hash("timing-equalizer")
	if err != nil {
		log.Printf("auth: dummy digest init: %v", err)
	}
	return digest
}()
