package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixmylab/internal/infrastructure/auth"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/utils"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTokenType = "token_type"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireStaff accepts only staff tokens. All back-office routes run
// behind it.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := m.verify(c)
		if claims == nil {
			return
		}

		if claims.TokenType != auth.TokenTypeStaff {
			utils.ErrorResponse(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyTokenType, string(claims.TokenType))

		c.Next()
	}
}

// RequireSession accepts staff tokens and anonymous public-session tokens.
// The intake endpoints run behind it: creating a ticket needs an identity,
// but not an account.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := m.verify(c)
		if claims == nil {
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyTokenType, string(claims.TokenType))

		c.Next()
	}
}

// verify extracts and validates the bearer token, aborting the request on
// failure.
func (m *AuthMiddleware) verify(c *gin.Context) *auth.Claims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		c.Abort()
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
		c.Abort()
		return nil
	}

	claims, err := m.jwtService.Verify(parts[1])
	if err != nil {
		m.logger.Warnw("failed to verify token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
		c.Abort()
		return nil
	}

	return claims
}

// SessionID returns the session identifier set by the auth middleware.
func SessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySessionID)
	s, _ := v.(string)
	return s
}
