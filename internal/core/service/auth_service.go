package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/employee-api/internal/core/domain"
	"github.com/peopleops/employee-api/internal/core/ports"
)

// sessionTTL is fixed at creation time; there is no sliding expiry.
const sessionTTL = 8 * time.Hour

// AuthService implements login, token resolution and logout on top of the
// user repository and the session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	audit    ports.AuditSink
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, audit: audit, logger: logger}
}

// Login verifies the credentials and creates a session. Unknown username and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	session := domain.Session{
		UserID:     user.ID,
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
	}
	if err := s.sessions.Create(ctx, token, session, sessionTTL); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session created")
	s.audit.Enqueue(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    domain.AuditLogin,
		ActorID:   user.ID,
		Timestamp: time.Now().UTC(),
	})

	return token, nil
}

// Authenticate resolves a token to its session. Missing, unknown and expired
// tokens all collapse into ErrAuthenticationRequired so callers learn nothing
// about token validity; store failures stay distinct and surface as internal
// errors.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrAuthenticationRequired
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrAuthenticationRequired
	}

	if _, err := domain.ParseRole(string(session.Role)); err != nil {
		s.logger.Error().Str("role", string(session.Role)).Msg("session carries unrecognized role")
		return nil, err
	}

	return session, nil
}

// Logout deletes the session. Deleting an absent token succeeds, so repeated
// logouts are harmless.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.audit.Enqueue(domain.AuditEvent{
		ID:        uuid.NewString(),
		Action:    domain.AuditLogout,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// generateToken returns a 128-bit random token, hex-encoded. Token guessing
// is infeasible at this entropy; uniqueness follows from the same property.
func generateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
