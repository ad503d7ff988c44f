package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/middleware"
	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/services"
)

// CreateCarRequest represents the request body for POST /cars. The caller's
// user id travels in salesperson_id; a session token overrides it.
type CreateCarRequest struct {
	Make          string   `json:"make"`
	Brand         string   `json:"brand"` // alias accepted by the mobile client
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	Price         *float64 `json:"price"`
	ImportPrice   *float64 `json:"import_price"`
	Color         string   `json:"color"`
	EngineType    string   `json:"engine_type"`
	CarCondition  string   `json:"car_condition"`
	CarType       string   `json:"car_type"`
	Description   string   `json:"description"`
	Remark        string   `json:"remark"`
	Images        []string `json:"images"`
	SalespersonID *uint    `json:"salesperson_id"`
}

// UpdateCarRequest represents the request body for PUT /cars/:id
type UpdateCarRequest struct {
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	Price       *float64 `json:"price"`
	ImportPrice *float64 `json:"import_price"`
}

// SellCarRequest represents the request body for POST /cars/:id/sell
type SellCarRequest struct {
	ID        *uint    `json:"id"` // caller's user id
	SoldPrice *float64 `json:"sold_price"`
}

// CarSummary is one row of the GET /cars listing
type CarSummary struct {
	ID          uint             `json:"id"`
	VIN         string           `json:"vin_number"`
	Make        string           `json:"make"`
	Model       string           `json:"model"`
	ModelYear   int              `json:"year"`
	Price       float64          `json:"price"`
	ImportPrice float64          `json:"import_price"`
	Status      string           `json:"status"`
	SoldPrice   *float64         `json:"sold_price"`
	Profit      *float64         `json:"profit"`
	SoldAt      *time.Time       `json:"sold_at"`
	CreatedAt   time.Time        `json:"created_at"`
	Thumbnail   *models.CarImage `gorm:"-" json:"thumbnail,omitempty"`
}

// GetCars handles GET /cars - lists cars with pricing and one thumbnail each
func GetCars(c *gin.Context) {
	db := config.GetDB()

	var cars []CarSummary
	err := db.Model(&models.Car{}).
		Select("cars.id, cars.vin AS vin, cars.make, cars.model, cars.model_year, cars.created_at, car_pricings.price, car_pricings.import_price, car_pricings.status, car_pricings.sold_price, car_pricings.profit, car_pricings.sold_at").
		Joins("JOIN car_pricings ON car_pricings.car_id = cars.id").
		Order("cars.created_at DESC, cars.id DESC").
		Scan(&cars).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list cars",
			"details": err.Error(),
		})
		return
	}

	// One thumbnail per car: the oldest image row, a deterministic choice
	var thumbnails []models.CarImage
	err = db.Where("id IN (?)",
		db.Model(&models.CarImage{}).Select("MIN(id)").Group("car_id"),
	).Find(&thumbnails).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load thumbnails",
			"details": err.Error(),
		})
		return
	}

	photos := services.GetPhotoService()
	byCar := make(map[uint]*models.CarImage, len(thumbnails))
	for i := range thumbnails {
		if photos != nil {
			photos.Hydrate(&thumbnails[i])
		}
		byCar[thumbnails[i].CarID] = &thumbnails[i]
	}
	for i := range cars {
		cars[i].Thumbnail = byCar[cars[i].ID]
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /cars/:id - full detail, pricing and all images
func GetCar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	db := config.GetDB()
	var car models.Car
	if err := db.First(&car, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}

	var detail models.CarDetail
	if err := db.Where("car_id = ?", id).First(&detail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load car detail",
			"details": err.Error(),
		})
		return
	}

	var pricing models.CarPricing
	if err := db.Where("car_id = ?", id).First(&pricing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load car pricing",
			"details": err.Error(),
		})
		return
	}

	var images []models.CarImage
	if err := db.Where("car_id = ?", id).Order("id ASC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load car images",
			"details": err.Error(),
		})
		return
	}
	if photos := services.GetPhotoService(); photos != nil {
		for i := range images {
			photos.Hydrate(&images[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            car.ID,
		"vin_number":    car.VIN,
		"make":          car.Make,
		"model":         car.Model,
		"year":          car.ModelYear,
		"color":         detail.Color,
		"engine_type":   detail.EngineType,
		"car_condition": detail.CarCondition,
		"car_type":      detail.CarType,
		"description":   detail.Description,
		"remark":        detail.Remark,
		"price":         pricing.Price,
		"import_price":  pricing.ImportPrice,
		"status":        pricing.Status,
		"sold_price":    pricing.SoldPrice,
		"profit":        pricing.Profit,
		"sold_by_id":    pricing.SoldByID,
		"sold_at":       pricing.SoldAt,
		"images":        images,
		"created_at":    car.CreatedAt,
	})
}

// CreateCar handles POST /cars - the atomic four-table creation workflow
func CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	callerID, err := middleware.CallerID(c, req.SalespersonID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity required"})
		return
	}

	db := config.GetDB()
	identity, err := services.NewIdentityService(db).ResolveIdentity(callerID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown caller identity"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to resolve caller",
			"details": err.Error(),
		})
		return
	}

	carMake := req.Make
	if carMake == "" {
		carMake = req.Brand
	}

	carID, err := services.NewInventoryService(db).CreateCar(identity, services.CreateCarInput{
		Make:         carMake,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		ImportPrice:  req.ImportPrice,
		Color:        req.Color,
		EngineType:   req.EngineType,
		CarCondition: req.CarCondition,
		CarType:      req.CarType,
		Description:  req.Description,
		Remark:       req.Remark,
		Images:       req.Images,
	})
	if err != nil {
		writeWorkflowError(c, err, "Failed to add car")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car added", "id": carID})
}

// UpdateCar handles PUT /cars/:id - updates core and pricing fields
func UpdateCar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	svc := services.NewInventoryService(config.GetDB())
	err = svc.UpdateCar(id, services.UpdateCarInput{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		ImportPrice: req.ImportPrice,
	})
	if err != nil {
		writeWorkflowError(c, err, "Failed to update car")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car updated"})
}

// DeleteCar handles DELETE /cars/:id - cascades to detail, pricing, images
func DeleteCar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	svc := services.NewInventoryService(config.GetDB())
	if err := svc.DeleteCar(id); err != nil {
		writeWorkflowError(c, err, "Failed to delete car")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
}

// SellCar handles POST /cars/:id/sell - the guarded sale workflow
func SellCar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req SellCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	callerID, err := middleware.CallerID(c, req.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity required"})
		return
	}

	db := config.GetDB()
	identity, err := services.NewIdentityService(db).ResolveIdentity(callerID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to resolve caller",
			"details": err.Error(),
		})
		return
	}

	if err := services.NewInventoryService(db).SellCar(identity, id, req.SoldPrice); err != nil {
		writeWorkflowError(c, err, "Failed to sell car")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car sold"})
}

// writeWorkflowError maps service-layer errors onto the HTTP contract
func writeWorkflowError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admin and sales roles may manage inventory"})
	case errors.Is(err, services.ErrNotLinked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No salesperson record is linked to this user"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown caller identity"})
	case errors.Is(err, services.ErrCarNotAvailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found or already sold"})
	case errors.Is(err, services.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
