package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServerStartup verifies the full router can be assembled
func TestServerStartup(t *testing.T) {
	router := newTestRouter(t)
	assert.NotNil(t, router, "Router should be initialized")
}

// TestDealershipLifecycleAcceptance walks the happy path end to end the way
// the mobile client does: sign up, promote to sales, create a car, sell it,
// and read the report.
func TestDealershipLifecycleAcceptance(t *testing.T) {
	router := newTestRouter(t)

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
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

	// Sign up a user and promote them to sales
	w := do("POST", "/signup", map[string]interface{}{
		"name": "Dana Seller", "email": "dana@openlot.test", "password": "pass123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var signup struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.NotZero(t, signup.ID)

	w = do("PUT", fmt.Sprintf("/users/%d", signup.ID), map[string]interface{}{"role": "sales"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Log in with the new credentials
	w = do("POST", "/login", map[string]interface{}{
		"email": "dana@openlot.test", "password": "pass123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token, "Login should issue a session token")

	// Create a car
	w = do("POST", "/cars", map[string]interface{}{
		"make": "Toyota", "model": "Corolla", "year": 2022,
		"price": 20000.0, "import_price": 15000.0,
		"salesperson_id": signup.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Inspect it
	w = do("GET", fmt.Sprintf("/cars/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var car map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &car))
	assert.Equal(t, float64(20000), car["price"])
	assert.Equal(t, float64(15000), car["import_price"])
	assert.Equal(t, "in_stock", car["status"])

	// Sell it
	w = do("POST", fmt.Sprintf("/cars/%d/sell", created.ID), map[string]interface{}{
		"id": signup.ID, "sold_price": 21000.0,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do("GET", fmt.Sprintf("/cars/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &car))
	assert.Equal(t, "sold", car["status"])
	assert.Equal(t, float64(6000), car["profit"])

	// Selling again is refused without touching the numbers
	w = do("POST", fmt.Sprintf("/cars/%d/sell", created.ID), map[string]interface{}{
		"id": signup.ID, "sold_price": 99999.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do("GET", fmt.Sprintf("/cars/%d", created.ID), nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &car))
	assert.Equal(t, float64(6000), car["profit"], "Profit must not change on a re-sell attempt")

	// The report reflects the sale
	w = do("GET", "/reports/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var report map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	sales := report["sales_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), sales["sold_count"])
	assert.Equal(t, float64(21000), sales["total_revenue"])
	assert.Equal(t, float64(6000), sales["total_profit"])
}
