package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openlot/openlot-api/config"
	"github.com/openlot/openlot-api/models"
	"github.com/openlot/openlot-api/services"
	"github.com/openlot/openlot-api/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupControllerTest wires an in-memory database, test config, and inline
// photo storage, and returns a bare router in test mode.
func setupControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	config.SetConfig(&config.Config{JWTSecret: "controller-test-secret", GoEnv: "test"})
	services.InitPhotoService(nil, false)

	return gin.New(), db
}

// performJSON runs a JSON request against the router
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// seedUser creates a user with a bcrypt-hashed password
func seedUser(t *testing.T, db *gorm.DB, name, email, password, role string, salespersonID *uint) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	user := models.User{
		Name: name, Email: email, Password: hash,
		Role: role, SalespersonID: salespersonID,
	}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

// seedLinkedSalesUser creates a sales user with a linked salesperson row
func seedLinkedSalesUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	sp := models.Salesperson{FirstName: "Sales", LastName: "Person", Email: email}
	assert.NoError(t, db.Create(&sp).Error)
	return seedUser(t, db, "Sales Person", email, "pass123", models.RoleSales, &sp.ID)
}
