package models

import (
	"time"
)

// Salesperson represents a member of the sales team. A salesperson is
// linked to a User (by users.salesperson_id) so sales can be attributed
// to them when a car is sold.
type Salesperson struct {
	ID          uint      `gorm:"primaryKey" json:"salesperson_id"`
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	MobilePhone string    `json:"mobile_phone"`
	OfficePhone string    `json:"office_phone"`
	Address     string    `json:"address"`
	HireDate    time.Time `json:"hire_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Salesperson model
func (Salesperson) TableName() string {
	return "salespeople"
}
