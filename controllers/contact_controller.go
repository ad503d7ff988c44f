package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/models"
)

// ContactRequest represents the salesperson create/update payload
type ContactRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	MobilePhone string `json:"mobile_phone"`
	OfficePhone string `json:"office_phone"`
	Address     string `json:"address"`
	HireDate    string `json:"hire_date"` // YYYY-MM-DD, optional
}

// GetContacts handles GET /contacts - lists the sales team
func GetContacts(c *gin.Context) {
	db := config.GetDB()
	var contacts []models.Salesperson
	if err := db.Order("id ASC").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list contacts",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /contacts
func CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.FirstName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first_name and email are required"})
		return
	}

	contact := models.Salesperson{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		MobilePhone: req.MobilePhone,
		OfficePhone: req.OfficePhone,
		Address:     req.Address,
		HireDate:    parseHireDate(req.HireDate),
	}

	if err := config.GetDB().Create(&contact).Error; err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to add contact",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact added", "id": contact.ID})
}

// UpdateContact handles PUT /contacts/:id
func UpdateContact(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	db := config.GetDB()
	var contact models.Salesperson
	if err := db.First(&contact, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.MobilePhone != "" {
		updates["mobile_phone"] = req.MobilePhone
	}
	if req.OfficePhone != "" {
		updates["office_phone"] = req.OfficePhone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.HireDate != "" {
		updates["hire_date"] = parseHireDate(req.HireDate)
	}

	if len(updates) > 0 {
		if err := db.Model(&contact).Updates(updates).Error; err != nil {
			if isDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to update contact",
				"details": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated"})
}

// DeleteContact handles DELETE /contacts/:id
func DeleteContact(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	db := config.GetDB()
	var contact models.Salesperson
	if err := db.First(&contact, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	if err := db.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete contact",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}

func parseHireDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Now()
}
