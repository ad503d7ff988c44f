package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTableName(t *testing.T) {
	user := User{}
	assert.Equal(t, "users", user.TableName(), "Table name should be 'users'")
}

func TestUserStructFields(t *testing.T) {
	user := User{
		Email: "test@example.com",
		Role:  "sales",
	}

	assert.Equal(t, "test@example.com", user.Email, "Email should be set correctly")
	assert.Equal(t, "sales", user.Role, "Role should be set correctly")
}

func TestUserIsPrivileged(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		privileged bool
	}{
		{"admin role", RoleAdmin, true},
		{"sales role", RoleSales, true},
		{"user role", RoleUser, false},
		{"empty role", "", false},
		{"unknown role", "manager", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := User{
				Email: "test@example.com",
				Role:  tt.role,
			}
			assert.Equal(t, tt.privileged, user.IsPrivileged())
		})
	}
}
