// Package auth issues the two session kinds the service knows: staff logins
// and the anonymous sessions the public intake form runs on. Every ticket
// creation requires one of the two identities.
package auth

import (
	"context"

	"fixmylab/internal/domain/user"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

// PasswordHasher verifies stored password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenService mints and validates session tokens.
type TokenService interface {
	IssueStaffToken(userID uint, email, role string) (string, error)
	IssueAnonymousToken() (token string, sessionID string, err error)
}

type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SessionResult struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}

type Service struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenService
	logger logger.Interface
}

func NewService(users user.Repository, hasher PasswordHasher, tokens TokenService, log logger.Interface) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: log,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to load user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		// Same error as a wrong password so the response does not leak
		// which addresses have accounts.
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := s.hasher.Compare(u.PasswordHash(), password); err != nil {
		s.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.tokens.IssueStaffToken(u.ID(), u.Email(), u.Role())
	if err != nil {
		s.logger.Errorw("failed to issue token", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("staff login", "email", email, "role", u.Role())
	return &LoginResult{
		Token: token,
		Email: u.Email(),
		Role:  u.Role(),
	}, nil
}

// CreateAnonymousSession mints a short-lived identity for the public intake
// form. The session ID becomes the ticket's user_id.
func (s *Service) CreateAnonymousSession(ctx context.Context) (*SessionResult, error) {
	token, sessionID, err := s.tokens.IssueAnonymousToken()
	if err != nil {
		s.logger.Errorw("failed to issue anonymous token", "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	return &SessionResult{
		Token:     token,
		SessionID: sessionID,
	}, nil
}
