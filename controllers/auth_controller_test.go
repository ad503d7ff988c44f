package controllers

import (
	"net/http"
	"testing"

	"github.com/openlot/openlot-api/models"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	router, db := setupControllerTest(t)
	router.POST("/login", Login)

	seedUser(t, db, "Admin", "admin@openlot.test", "correct-pass", models.RoleAdmin, nil)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "Successful login",
			body:           map[string]interface{}{"email": "admin@openlot.test", "password": "correct-pass"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong password",
			body:           map[string]interface{}{"email": "admin@openlot.test", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Unknown email",
			body:           map[string]interface{}{"email": "ghost@openlot.test", "password": "x"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing password",
			body:           map[string]interface{}{"email": "admin@openlot.test"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, router, "POST", "/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			body := decodeBody(t, w)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "Login successful", body["message"])
				assert.NotEmpty(t, body["token"], "Login should issue a session token")
				user := body["user"].(map[string]interface{})
				assert.Equal(t, "admin@openlot.test", user["email"])
				assert.NotContains(t, user, "password", "Password hash must never be serialized")
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestSignup(t *testing.T) {
	router, db := setupControllerTest(t)
	router.POST("/signup", Signup)

	w := performJSON(t, router, "POST", "/signup", map[string]interface{}{
		"name": "New User", "email": "new@openlot.test", "password": "pass123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "User created", body["message"])
	assert.NotZero(t, body["id"])

	// Self-registration never grants a privileged role
	var user models.User
	assert.NoError(t, db.Where("email = ?", "new@openlot.test").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "pass123", user.Password, "Password must be stored hashed")

	// Duplicate email is a conflict
	w = performJSON(t, router, "POST", "/signup", map[string]interface{}{
		"name": "Other User", "email": "new@openlot.test", "password": "pass456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])
}

func TestSignupValidation(t *testing.T) {
	router, _ := setupControllerTest(t)
	router.POST("/signup", Signup)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"email": "a@b.test", "password": "x"}},
		{"missing email", map[string]interface{}{"name": "A", "password": "x"}},
		{"missing password", map[string]interface{}{"name": "A", "email": "a@b.test"}},
		{"invalid email", map[string]interface{}{"name": "A", "email": "nope", "password": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, router, "POST", "/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
