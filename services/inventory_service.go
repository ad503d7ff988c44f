package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/utils"
	"gorm.io/gorm"
)

// InventoryService orchestrates the multi-table write workflows for cars.
// It receives its database handle at construction so request code decides
// which session the workflow runs against.
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates an inventory service bound to a database handle
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// CreateCarInput carries the car-creation payload. Price and ImportPrice
// are pointers so a missing field can be told apart from zero.
type CreateCarInput struct {
	Make         string
	Model        string
	Year         int
	Price        *float64
	ImportPrice  *float64
	Color        string
	EngineType   string
	CarCondition string
	CarType      string
	Description  string
	Remark       string
	Images       []string
}

// UpdateCarInput carries the fields PUT /cars/:id may change
type UpdateCarInput struct {
	Make        string
	Model       string
	Year        int
	Price       *float64
	ImportPrice *float64
}

// CreateCar inserts a Car with its detail, pricing, and image rows in one
// transaction. Any step's failure rolls the whole unit back; readers never
// observe a partially created car.
func (s *InventoryService) CreateCar(identity *ResolvedIdentity, in CreateCarInput) (uint, error) {
	if identity == nil {
		return 0, ErrUserNotFound
	}
	if !identity.CanManageInventory() {
		return 0, ErrForbidden
	}
	if in.Make == "" {
		return 0, fmt.Errorf("%w: make", ErrMissingField)
	}
	if in.Model == "" {
		return 0, fmt.Errorf("%w: model", ErrMissingField)
	}
	if in.Price == nil {
		return 0, fmt.Errorf("%w: price", ErrMissingField)
	}
	if in.ImportPrice == nil {
		return 0, fmt.Errorf("%w: import_price", ErrMissingField)
	}

	car := models.Car{
		VIN:       utils.GenerateVIN(),
		Make:      in.Make,
		Model:     in.Model,
		ModelYear: in.Year,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&car).Error; err != nil {
			return fmt.Errorf("failed to insert car: %w", err)
		}

		detail := models.CarDetail{
			CarID:        car.ID,
			Color:        in.Color,
			EngineType:   in.EngineType,
			CarCondition: in.CarCondition,
			CarType:      in.CarType,
			Description:  in.Description,
			Remark:       in.Remark,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return fmt.Errorf("failed to insert car detail: %w", err)
		}

		pricing := models.CarPricing{
			CarID:       car.ID,
			Price:       *in.Price,
			ImportPrice: *in.ImportPrice,
			Status:      models.StatusInStock,
		}
		if err := tx.Create(&pricing).Error; err != nil {
			return fmt.Errorf("failed to insert car pricing: %w", err)
		}

		photos := GetPhotoService()
		for _, payload := range in.Images {
			if _, err := photos.StoreCarPhoto(tx, car.ID, payload); err != nil {
				return fmt.Errorf("failed to store car image: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return car.ID, nil
}

// SellCar marks a car as sold on behalf of the resolved identity. The
// status guard lives in the UPDATE itself: of any number of concurrent
// attempts on the same car, the storage layer lets exactly one through.
func (s *InventoryService) SellCar(identity *ResolvedIdentity, carID uint, soldPrice *float64) error {
	if identity == nil {
		return ErrUserNotFound
	}
	if !identity.CanManageInventory() {
		return ErrForbidden
	}
	salespersonID, err := identity.RequireSalesperson()
	if err != nil {
		return err
	}
	if soldPrice == nil {
		return fmt.Errorf("%w: sold_price", ErrMissingField)
	}

	// profit = sold_price - import_price, computed inside the same guarded
	// statement so it is never recomputed on a later attempt
	result := s.db.Model(&models.CarPricing{}).
		Where("car_id = ? AND status = ?", carID, models.StatusInStock).
		Updates(map[string]interface{}{
			"status":     models.StatusSold,
			"sold_by_id": salespersonID,
			"sold_price": *soldPrice,
			"profit":     gorm.Expr("? - import_price", *soldPrice),
			"sold_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to sell car %d: %w", carID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCarNotAvailable
	}

	return nil
}

// UpdateCar changes the core and pricing fields of a car in one transaction
func (s *InventoryService) UpdateCar(carID uint, in UpdateCarInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var car models.Car
		if err := tx.First(&car, carID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return fmt.Errorf("failed to load car %d: %w", carID, err)
		}

		updates := map[string]interface{}{}
		if in.Make != "" {
			updates["make"] = in.Make
		}
		if in.Model != "" {
			updates["model"] = in.Model
		}
		if in.Year != 0 {
			updates["model_year"] = in.Year
		}
		if len(updates) > 0 {
			if err := tx.Model(&car).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update car %d: %w", carID, err)
			}
		}

		pricingUpdates := map[string]interface{}{}
		if in.Price != nil {
			pricingUpdates["price"] = *in.Price
		}
		if in.ImportPrice != nil {
			pricingUpdates["import_price"] = *in.ImportPrice
		}
		if len(pricingUpdates) > 0 {
			err := tx.Model(&models.CarPricing{}).
				Where("car_id = ?", carID).
				Updates(pricingUpdates).Error
			if err != nil {
				return fmt.Errorf("failed to update pricing for car %d: %w", carID, err)
			}
		}

		return nil
	})
}

// DeleteCar removes a car and all of its dependent rows in one transaction.
// Offloaded photo objects are cleaned up after the commit.
func (s *InventoryService) DeleteCar(carID uint) error {
	var images []models.CarImage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var car models.Car
		if err := tx.First(&car, carID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return fmt.Errorf("failed to load car %d: %w", carID, err)
		}

		if err := tx.Where("car_id = ?", carID).Find(&images).Error; err != nil {
			return fmt.Errorf("failed to list images for car %d: %w", carID, err)
		}

		if err := tx.Where("car_id = ?", carID).Delete(&models.CarImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete images for car %d: %w", carID, err)
		}
		if err := tx.Where("car_id = ?", carID).Delete(&models.CarPricing{}).Error; err != nil {
			return fmt.Errorf("failed to delete pricing for car %d: %w", carID, err)
		}
		if err := tx.Where("car_id = ?", carID).Delete(&models.CarDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete detail for car %d: %w", carID, err)
		}
		if err := tx.Delete(&car).Error; err != nil {
			return fmt.Errorf("failed to delete car %d: %w", carID, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if photos := GetPhotoService(); photos != nil {
		photos.CleanupCarPhotos(images)
	}
	return nil
}
