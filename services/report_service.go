package services

import (
	"fmt"
	"time"

	"github.com/openlot/openlot-api/models"
	"gorm.io/gorm"
)

// InventoryStats aggregates the in-stock side of the lot
type InventoryStats struct {
	InStockCount   int64   `json:"in_stock_count"`
	InventoryValue float64 `json:"inventory_value"`
}

// SalesStats aggregates completed sales
type SalesStats struct {
	SoldCount    int64   `json:"sold_count"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalProfit  float64 `json:"total_profit"`
}

// ProfitableSale is one entry of the most-profitable list
type ProfitableSale struct {
	CarID     uint       `json:"car_id"`
	Make      string     `json:"make"`
	Model     string     `json:"model"`
	ModelYear int        `json:"year"`
	SoldPrice float64    `json:"sold_price"`
	Profit    float64    `json:"profit"`
	SoldByID  *uint      `json:"sold_by_id"`
	SoldAt    *time.Time `json:"sold_at"`
}

// StatsReport is the GET /reports/stats payload
type StatsReport struct {
	InventoryStats      InventoryStats   `json:"inventory_stats"`
	SalesStats          SalesStats       `json:"sales_stats"`
	MostProfitableSales []ProfitableSale `json:"most_profitable_sales"`
}

// topSalesLimit caps the most-profitable list
const topSalesLimit = 10

// ReportService assembles read-only aggregate projections
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a report service bound to a database handle
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// GetStats computes inventory and sales aggregates plus the top-profit
// list. Profit ties break on car_id ascending so the ordering is stable.
func (s *ReportService) GetStats() (*StatsReport, error) {
	report := &StatsReport{
		MostProfitableSales: []ProfitableSale{},
	}

	err := s.db.Model(&models.CarPricing{}).
		Select("COUNT(*) AS in_stock_count, COALESCE(SUM(price), 0) AS inventory_value").
		Where("status = ?", models.StatusInStock).
		Scan(&report.InventoryStats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate inventory stats: %w", err)
	}

	err = s.db.Model(&models.CarPricing{}).
		Select("COUNT(*) AS sold_count, COALESCE(SUM(sold_price), 0) AS total_revenue, COALESCE(SUM(profit), 0) AS total_profit").
		Where("status = ?", models.StatusSold).
		Scan(&report.SalesStats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales stats: %w", err)
	}

	err = s.db.Model(&models.CarPricing{}).
		Select("car_pricings.car_id, cars.make, cars.model, cars.model_year, car_pricings.sold_price, car_pricings.profit, car_pricings.sold_by_id, car_pricings.sold_at").
		Joins("JOIN cars ON cars.id = car_pricings.car_id").
		Where("car_pricings.status = ?", models.StatusSold).
		Order("car_pricings.profit DESC, car_pricings.car_id ASC").
		Limit(topSalesLimit).
		Scan(&report.MostProfitableSales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list most profitable sales: %w", err)
	}

	return report, nil
}
