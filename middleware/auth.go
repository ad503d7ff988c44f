package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/openlot/openlot-api/config"
)

// SessionClaims are the claims carried by a session token issued at login.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

// IssueSessionToken signs an HS256 session token for the given user.
func IssueSessionToken(cfg *config.Config, userID uint, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret(cfg))
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(cfg *config.Config, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret(cfg), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// Identify is a middleware that resolves the caller from an optional
// Authorization: Bearer header. The mobile client also sends the caller id
// as a plain body field; when a valid token is present it takes precedence
// over anything client-supplied. Requests without a token pass through
// unauthenticated — per-handler checks decide what is allowed.
func Identify(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.Next()
			return
		}

		claims, err := ParseSessionToken(cfg, tokenString)
		if err != nil {
			// A malformed token is ignored rather than rejected: the body
			// field remains a valid identity source for this client.
			c.Next()
			return
		}

		c.Set("caller_id", claims.UserID)
		c.Set("caller_role", claims.Role)
		c.Next()
	}
}

// CallerID returns the authenticated caller id from the Gin context,
// falling back to the client-supplied id when no token was presented.
func CallerID(c *gin.Context, bodyID *uint) (uint, error) {
	if v, exists := c.Get("caller_id"); exists {
		if id, ok := v.(uint); ok {
			return id, nil
		}
	}
	if bodyID != nil && *bodyID != 0 {
		return *bodyID, nil
	}
	return 0, &AuthError{Code: "MISSING_CALLER", Message: "Caller identity not provided"}
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func secret(cfg *config.Config) []byte {
	if cfg != nil && cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	// Development fallback; production config requires JWT_SECRET.
	return []byte("openlot-dev-secret")
}
