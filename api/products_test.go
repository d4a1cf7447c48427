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
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	e := newTestAPI(t)

	payload := productBody("Widget", 9.99, 100)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/products", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := bodyMap(t, rec)
	assert.NotEmpty(t, body["id"])
	for field, want := range payload {
		assert.EqualValues(t, want, body[field], field)
	}

	stored := getProduct(t, e, body["id"])
	assert.Equal(t, body, stored)
}

func TestCreateProductMissingField(t *testing.T) {
	e := newTestAPI(t)

	for _, field := range []string{"name", "description", "price", "amount"} {
		t.Run(field, func(t *testing.T) {
			payload := productBody("Widget", 9.99, 100)
			delete(payload, field)

			rec := doJSON(t, e, http.MethodPost, "/api/v1/products", payload)
			detail := require422(t, rec, field)
			assert.Equal(t, "Field required", detail["msg"])
			assert.Equal(t, "missing", detail["type"])
		})
	}
}

func TestCreateProductUnknownField(t *testing.T) {
	e := newTestAPI(t)

	payload := productBody("Widget", 9.99, 100)
	payload["color"] = "red"

	rec := doJSON(t, e, http.MethodPost, "/api/v1/products", payload)
	detail := require422(t, rec, "color")
	assert.Equal(t, "Extra inputs are not permitted", detail["msg"])
	assert.Equal(t, "extra_forbidden", detail["type"])
}

func TestCreateProductWrongType(t *testing.T) {
	e := newTestAPI(t)

	payload := productBody("Widget", 9.99, 100)
	payload["price"] = "expensive"

	rec := doJSON(t, e, http.MethodPost, "/api/v1/products", payload)
	detail := require422(t, rec, "price")
	assert.Equal(t, "Input should be a valid float64", detail["msg"])
	assert.Equal(t, "type_error", detail["type"])
}

func TestCreateProductMalformedJSON(t *testing.T) {
	e := newTestAPI(t)

	rec := doRaw(t, e, http.MethodPost, "/api/v1/products", `{"name": `)
	detail := require422(t, rec, "body")
	assert.Equal(t, "Invalid JSON body", detail["msg"])
	assert.Equal(t, "json_invalid", detail["type"])
}

func TestGetProduct(t *testing.T) {
	e := newTestAPI(t)

	created := createProduct(t, e, "Widget", 9.99, 100)
	body := getProduct(t, e, created["id"])
	assert.Equal(t, "Widget", body["name"])
	assert.Equal(t, "Widget description", body["description"])
	assert.EqualValues(t, 9.99, body["price"])
	assert.EqualValues(t, 100, body["amount"])
	assert.NotContains(t, body, "order_items")
}

func TestGetProductNotFound(t *testing.T) {
	e := newTestAPI(t)

	id := uuid.New()
	rec := doJSON(t, e, http.MethodGet, "/api/v1/products/"+id.String(), nil)
	requireDetail(t, rec, http.StatusNotFound, fmt.Sprintf("Product %s not found.", id))
}

func TestGetProductInvalidID(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	detail := require422(t, rec, "id")
	assert.Equal(t, "Input should be a valid UUID", detail["msg"])
	assert.Equal(t, "uuid_parsing", detail["type"])

	loc := detail["loc"].([]interface{})
	assert.Equal(t, "path", loc[0])
}

func TestGetProductWithOrderItems(t *testing.T) {
	e := newTestAPI(t)

	product := createProduct(t, e, "Widget", 9.99, 10)
	order := createOrder(t, e, orderItem(product["id"], 4))

	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/products/%v?include=order_items", product["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := bodyMap(t, rec)
	assert.Equal(t, product["id"], body["id"])
	items, ok := body["order_items"].([]interface{})
	require.True(t, ok, "order_items must be present when included")
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.EqualValues(t, 4, item["amount"])
	assert.Equal(t, order["id"], item["order_id"])
}

func TestGetProductUnknownInclude(t *testing.T) {
	e := newTestAPI(t)

	product := createProduct(t, e, "Widget", 9.99, 10)
	rec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/products/%v?include=warehouse", product["id"]), nil)
	requireDetail(t, rec, http.StatusUnprocessableEntity,
		`unsupported relation "warehouse" for model Product`)
}

func TestListProducts(t *testing.T) {
	e := newTestAPI(t)

	t.Run("empty catalog", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/products", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	var ids []interface{}
	for i := 0; i < 3; i++ {
		product := createProduct(t, e, fmt.Sprintf("Product %d", i), float64(i), i+1)
		ids = append(ids, product["id"])
	}

	t.Run("all products in creation order", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/products", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]interface{}
		decode(t, rec, &body)
		require.Len(t, body, 3)
		for i, product := range body {
			assert.Equal(t, ids[i], product["id"])
		}
	})

	t.Run("offset and limit", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/products?offset=1&limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]interface{}
		decode(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, ids[1], body[0]["id"])
	})

	t.Run("trailing slash", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/products/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListProductsPaginationErrors(t *testing.T) {
	e := newTestAPI(t)

	tests := []struct {
		name    string
		query   string
		field   string
		msg     string
		errType string
	}{
		{"negative offset", "offset=-1", "offset", "Input should be greater than or equal to 0", "greater_than_equal"},
		{"zero limit", "limit=0", "limit", "Input should be greater than 0", "greater_than"},
		{"limit above maximum", "limit=101", "limit", "Input should be less than or equal to 100", "less_than_equal"},
		{"offset not a number", "offset=abc", "offset", "Input should be a valid integer", "int_parsing"},
		{"limit not a number", "limit=ten", "limit", "Input should be a valid integer", "int_parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodGet, "/api/v1/products?"+tt.query, nil)
			detail := require422(t, rec, tt.field)
			assert.Equal(t, tt.msg, detail["msg"])
			assert.Equal(t, tt.errType, detail["type"])

			loc := detail["loc"].([]interface{})
			assert.Equal(t, "query", loc[0])
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	e := newTestAPI(t)

	product := createProduct(t, e, "Widget", 9.99, 100)

	rec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/products/%v", product["id"]),
		map[string]interface{}{"price": 256.99})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := bodyMap(t, rec)
	assert.EqualValues(t, 256.99, body["price"])
	assert.Equal(t, "Widget", body["name"], "fields absent from the payload keep their values")
	assert.EqualValues(t, 100, body["amount"])

	stored := getProduct(t, e, product["id"])
	assert.EqualValues(t, 256.99, stored["price"])
}

func TestUpdateProductErrors(t *testing.T) {
	e := newTestAPI(t)
	product := createProduct(t, e, "Widget", 9.99, 100)

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		rec := doJSON(t, e, http.MethodPut, "/api/v1/products/"+id.String(),
			map[string]interface{}{"price": 1.0})
		requireDetail(t, rec, http.StatusNotFound, fmt.Sprintf("Product %s not found.", id))
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPut, "/api/v1/products/not-a-uuid",
			map[string]interface{}{"price": 1.0})
		require422(t, rec, "id")
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/v1/products/%v", product["id"]),
			map[string]interface{}{"color": "red"})
		detail := require422(t, rec, "color")
		assert.Equal(t, "extra_forbidden", detail["type"])
	})
}

func TestDeleteProduct(t *testing.T) {
	e := newTestAPI(t)

	product := createProduct(t, e, "Widget", 9.99, 100)

	rec := doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/products/%v", product["id"]), nil)
	requireDetail(t, rec, http.StatusOK, "Deleted successfully.")

	rec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/v1/products/%v", product["id"]), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/v1/products/%v", product["id"]), nil)
	requireDetail(t, rec, http.StatusNotFound, fmt.Sprintf("Product %v not found.", product["id"]))
}
