package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/config"
	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

const ContextKeySessionID = "session_id"

// SessionClaims is the JWT payload for a wizard session token. The token is
// an anonymous capability: holding it is what grants access to the session,
// no user account is involved.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueSessionToken mints the bearer token returned when a wizard session is
// opened.
func IssueSessionToken(cfg *config.SessionConfig, sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken parses and verifies a session token, returning the
// session ID it grants access to.
func ValidateSessionToken(cfg *config.SessionConfig, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// SessionMiddleware validates the wizard session token and injects the
// session ID into the request context.
func SessionMiddleware(cfg *config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		sessionID, err := ValidateSessionToken(cfg, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session token"},
			})
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the wizard session ID from the Gin context.
func GetSessionID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeySessionID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}
