package models

import (
	"time"
)

// Role values recognized by the authorization layer.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
	RoleUser  = "user"
)

// User represents a login identity in the system
type User struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Email         string       `gorm:"uniqueIndex;not null" json:"email"`
	Password      string       `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role          string       `gorm:"not null;default:'user'" json:"role"` // "admin", "sales" or "user"
	SalespersonID *uint        `gorm:"index" json:"salesperson_id,omitempty"` // set when role is "sales"
	Salesperson   *Salesperson `gorm:"foreignKey:SalespersonID" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsPrivileged reports whether the user's role allows inventory writes.
func (u User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleSales
}
