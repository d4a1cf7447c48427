/*
 * Copyright 2025 AlexeyGordiychenko.
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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/api"
	"github.com/AlexeyGordiychenko/shopapi/database"
)

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := database.DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = "file::memory:?cache=shared"
	cfg.MaxIdleConns = 1
	cfg.MaxOpenConns = 1
	cfg.EnableReconnect = false
	cfg.HealthCheckInterval = 0
	cfg.AutoCreate = true

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB() })

	return api.NewRouter(shopapi.NewServices(db))
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doRaw(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func bodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := make(map[string]interface{})
	decode(t, rec, &body)
	return body
}

// require422 asserts the response is a 422 with exactly one field error whose
// loc ends in lastLoc, and returns that error for further checks.
func require422(t *testing.T, rec *httptest.ResponseRecorder, lastLoc interface{}) map[string]interface{} {
	t.Helper()

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var body struct {
		Detail []map[string]interface{} `json:"detail"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Detail, 1)

	loc, ok := body.Detail[0]["loc"].([]interface{})
	require.True(t, ok, "loc must be a list")
	require.NotEmpty(t, loc)
	assert.Equal(t, lastLoc, loc[len(loc)-1])
	return body.Detail[0]
}

// requireDetail asserts a plain detail-message response.
func requireDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, rec, &body)
	assert.Equal(t, detail, body.Detail)
}

func productBody(name string, price float64, amount int) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": name + " description",
		"price":       price,
		"amount":      amount,
	}
}

func createProduct(t *testing.T, e *echo.Echo, name string, price float64, amount int) map[string]interface{} {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/products", productBody(name, price, amount))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := bodyMap(t, rec)
	require.NotEmpty(t, body["id"])
	return body
}

func orderItem(productID interface{}, amount interface{}) map[string]interface{} {
	return map[string]interface{}{"product_id": productID, "amount": amount}
}

func createOrder(t *testing.T, e *echo.Echo, items ...map[string]interface{}) map[string]interface{} {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/orders", map[string]interface{}{"order_items": items})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return bodyMap(t, rec)
}

func getProduct(t *testing.T, e *echo.Echo, id interface{}) map[string]interface{} {
	t.Helper()

	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/products/%v", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return bodyMap(t, rec)
}
