/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/api"
	"storefront/database"
	"storefront/model"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	cfg := &database.Config{
		ConnectionConfig: database.ConnectionConfig{
			Type: "sqlite",
			Path: "file::memory:?cache=shared",
		},
		DataMigrateConfig: database.DataMigrateConfig{
			EnableMigrateOnStartup: true,
			EnableForeignKey:       true,
		},
	}
	if _, err := database.InitDB(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init database: %v\n", err)
		os.Exit(1)
	}
	router = api.NewRouter(api.Options{AllowedOrigins: []string{"*"}})
	code := m.Run()
	_ = database.CloseDB()
	os.Exit(code)
}

func do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func postUser(t *testing.T, email string) map[string]any {
	t.Helper()
	rec := do(t, http.MethodPost, "/users/", gin.H{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      email,
		"password":   "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)
}

func postProduct(t *testing.T, name string) map[string]any {
	t.Helper()
	rec := do(t, http.MethodPost, "/products/", gin.H{
		"name":        name,
		"description": "test product",
		"price":       1500,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)
}

func TestUserLifecycle(t *testing.T) {
	created := postUser(t, "ann.lee@example.com")
	assert.Equal(t, "Ann", created["first_name"])
	id := int64(created["id"].(float64))
	require.Greater(t, id, int64(0))

	rec := do(t, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann.lee@example.com", decode(t, rec)["email"])

	rec = do(t, http.MethodPut, fmt.Sprintf("/users/%d", id), gin.H{"first_name": "Bea"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "Bea", updated["first_name"])
	assert.Equal(t, "Lee", updated["last_name"])

	rec = do(t, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted", decode(t, rec)["detail"])

	rec = do(t, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["detail"])
}

func TestCreateProductAcceptsZeroValues(t *testing.T) {
	rec := do(t, http.MethodPost, "/products/", gin.H{
		"name":        "Free Sample",
		"description": "zero-cost item",
		"price":       0,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, float64(0), created["price"])

	// An empty string is present, so it passes the required check too.
	rec = do(t, http.MethodPost, "/products/", gin.H{
		"name":        "Unnamed Sample",
		"description": "",
		"price":       100,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "", decode(t, rec)["description"])
}

func TestCreateUserMissingField(t *testing.T) {
	rec := do(t, http.MethodPost, "/users/", gin.H{"first_name": "Ann"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec)["detail"], "required")
}

func TestDuplicateEmailConflict(t *testing.T) {
	postUser(t, "dup-api@example.com")

	rec := do(t, http.MethodPost, "/users/", gin.H{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      "dup-api@example.com",
		"password":   "secret",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already exists", decode(t, rec)["detail"])
}

func TestListUsers(t *testing.T) {
	postUser(t, "list-api@example.com")

	rec := do(t, http.MethodGet, "/users/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.NotEmpty(t, users)
}

func TestInvalidIdentifier(t *testing.T) {
	rec := do(t, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateUnknownUser(t *testing.T) {
	rec := do(t, http.MethodPut, "/users/99999999", gin.H{"first_name": "Zoe"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderEndToEnd(t *testing.T) {
	user := postUser(t, "order-api@example.com")
	product := postProduct(t, "API Widget")

	rec := do(t, http.MethodPost, "/orders/", gin.H{
		"user_id":    user["id"],
		"product_id": product["id"],
		"order_date": "2026-03-01",
		"status":     model.OrderStatusProcessed,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	order := decode(t, rec)
	assert.Equal(t, "2026-03-01", order["order_date"])

	orderID := int64(order["id"].(float64))
	rec = do(t, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), gin.H{"status": model.OrderStatusDelivered})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.OrderStatusDelivered, decode(t, rec)["status"])

	// The user backing an open order cannot be removed.
	rec = do(t, http.MethodDelete, fmt.Sprintf("/users/%v", user["id"]), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User is still referenced", decode(t, rec)["detail"])
}

func TestOrderWithDanglingReference(t *testing.T) {
	rec := do(t, http.MethodPost, "/orders/", gin.H{
		"user_id":    99999999,
		"product_id": 99999999,
		"order_date": "2026-03-01",
		"status":     model.OrderStatusProcessed,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "referenced entity does not exist", decode(t, rec)["detail"])
}

func TestOrderWithMalformedDate(t *testing.T) {
	rec := do(t, http.MethodPost, "/orders/", gin.H{
		"user_id":    1,
		"product_id": 1,
		"order_date": "03/01/2026",
		"status":     model.OrderStatusProcessed,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, true, payload["healthy"])

	stats, ok := payload["stats"].(map[string]any)
	require.True(t, ok)
	// The SQLite pool is pinned to a single connection.
	assert.Equal(t, float64(1), stats["max_open_conns"])
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/users/", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
