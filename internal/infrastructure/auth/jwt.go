package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeStaff     TokenType = "staff"
	TokenTypeAnonymous TokenType = "anonymous"
)

type Claims struct {
	UserID    uint      `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	SessionID string    `json:"session_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret              []byte
	accessExpMinutes    int
	anonymousExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes, anonymousExpMinutes int) *JWTService {
	return &JWTService{
		secret:              []byte(secret),
		accessExpMinutes:    accessExpMinutes,
		anonymousExpMinutes: anonymousExpMinutes,
	}
}

// IssueStaffToken mints an access token for a staff user.
func (s *JWTService) IssueStaffToken(userID uint, email, role string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		SessionID: uuid.NewString(),
		TokenType: TokenTypeStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign staff token: %w", err)
	}
	return signed, nil
}

// IssueAnonymousToken mints a short-lived token for the public intake form.
// The returned session ID identifies the anonymous submitter and is stored
// on any tickets created with the token.
func (s *JWTService) IssueAnonymousToken() (string, string, error) {
	now := time.Now().UTC()
	sessionID := uuid.NewString()

	claims := &Claims{
		SessionID: sessionID,
		TokenType: TokenTypeAnonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.anonymousExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign anonymous token: %w", err)
	}
	return signed, sessionID, nil
}

// Verify parses and validates a token of either kind.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
