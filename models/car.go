package models

import (
	"time"
)

// Pricing status values. A pricing row moves in_stock -> sold exactly once.
const (
	StatusInStock = "in_stock"
	StatusSold    = "sold"
)

// Car is the core identity record for a vehicle in inventory. A committed
// car always has exactly one CarDetail and one CarPricing row, and zero or
// more CarImage rows; all four are written in a single transaction.
type Car struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VIN       string    `gorm:"column:vin;index;not null" json:"vin_number"` // generated placeholder, not a business key
	Make      string    `gorm:"not null" json:"make"`
	Model     string    `gorm:"not null" json:"model"`
	ModelYear int       `gorm:"not null" json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Car model
func (Car) TableName() string {
	return "cars"
}

// CarDetail holds the descriptive 1:1 companion row for a Car
type CarDetail struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	CarID        uint   `gorm:"uniqueIndex;not null" json:"car_id"`
	Color        string `json:"color"`
	EngineType   string `json:"engine_type"`
	CarCondition string `json:"car_condition"`
	CarType      string `json:"car_type"`
	Description  string `json:"description"`
	Remark       string `json:"remark"`
}

// TableName specifies the table name for the CarDetail model
func (CarDetail) TableName() string {
	return "car_details"
}

// CarPricing holds the 1:1 pricing and sale-lifecycle row for a Car.
// Profit is computed once at sale time as sold_price - import_price.
type CarPricing struct {
	ID          uint         `gorm:"primaryKey" json:"-"`
	CarID       uint         `gorm:"uniqueIndex;not null" json:"car_id"`
	Price       float64      `gorm:"not null" json:"price"`
	ImportPrice float64      `gorm:"not null" json:"import_price"`
	Status      string       `gorm:"not null;default:'in_stock'" json:"status"` // "in_stock" or "sold"
	SoldPrice   *float64     `json:"sold_price"`
	Profit      *float64     `json:"profit"`
	SoldByID    *uint        `gorm:"index" json:"sold_by_id"`
	SoldBy      *Salesperson `gorm:"foreignKey:SoldByID" json:"sold_by,omitempty"`
	SoldAt      *time.Time   `json:"sold_at"`
}

// TableName specifies the table name for the CarPricing model
func (CarPricing) TableName() string {
	return "car_pricings"
}

// CarImage is a photo attached to a Car. The payload arrives base64-encoded;
// when S3 offload is configured the row stores the object key instead and
// ImageBase64 is left empty.
type CarImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CarID       uint      `gorm:"index;not null" json:"car_id"`
	ImageBase64 string    `gorm:"type:text" json:"image_base64,omitempty"`
	S3Key       *string   `json:"-"`
	ImageURL    *string   `gorm:"-" json:"image_url,omitempty"` // computed, presigned URL when offloaded
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the CarImage model
func (CarImage) TableName() string {
	return "car_images"
}

// AllModels lists every model for AutoMigrate, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Salesperson{},
		&User{},
		&Car{},
		&CarDetail{},
		&CarPricing{},
		&CarImage{},
	}
}
