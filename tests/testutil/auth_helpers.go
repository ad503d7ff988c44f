package testutil

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/middleware"
)

// TestJWTSecret signs session tokens in tests
const TestJWTSecret = "test-session-secret"

// TestConfig returns a config suitable for signing and verifying test tokens
func TestConfig() *config.Config {
	return &config.Config{
		JWTSecret: TestJWTSecret,
		GoEnv:     "test",
	}
}

// SessionTokenFor issues a real session token for the given user
func SessionTokenFor(userID uint, role string) (string, error) {
	return middleware.IssueSessionToken(TestConfig(), userID, role)
}

// SetAuthenticatedCaller marks the Gin context as carrying a verified caller
func SetAuthenticatedCaller(c *gin.Context, userID uint, role string) {
	c.Set("caller_id", userID)
	c.Set("caller_role", role)
}

// CreateTestContext creates a test Gin context
func CreateTestContext() (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	return gin.CreateTestContext(w)
}
