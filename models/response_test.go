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

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexeyGordiychenko/shopapi/types"
)

func testOrder() *Order {
	product := &Product{
		ID:          uuid.New(),
		Name:        "Widget",
		Description: "A simple widget",
		Price:       128.99,
		Amount:      100,
	}
	order := &Order{
		ID:           uuid.New(),
		CreationDate: types.NewDateTime(time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)),
		Status:       OrderStatusCreated,
	}
	order.OrderItems = []*OrderItem{
		{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Amount:    5,
			Product:   product,
		},
	}
	return order
}

func TestNewOrderResponse(t *testing.T) {
	order := testOrder()
	response := NewOrderResponse(order)

	assert.Equal(t, order.ID, response.ID)
	assert.Equal(t, order.CreationDate, response.CreationDate)
	assert.Equal(t, order.Status, response.Status)

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "order_items")
	assert.Contains(t, string(data), `"creation_date":"2025-03-14 15:09:26"`)
}

func TestNewOrderResponseWithItemsShort(t *testing.T) {
	order := testOrder()
	response := NewOrderResponseWithItemsShort(order)

	require.Len(t, response.OrderItems, 1)
	assert.Equal(t, order.OrderItems[0].ProductID, response.OrderItems[0].ProductID)
	assert.Equal(t, 5, response.OrderItems[0].Amount)

	order.OrderItems = nil
	response = NewOrderResponseWithItemsShort(order)
	assert.NotNil(t, response.OrderItems)
	assert.Empty(t, response.OrderItems)
}

func TestNewOrderResponseWithItems(t *testing.T) {
	order := testOrder()
	product := order.OrderItems[0].Product
	response := NewOrderResponseWithItems(order)

	require.Len(t, response.OrderItems, 1)
	item := response.OrderItems[0]
	assert.Equal(t, 5, item.Amount)
	assert.Equal(t, product.ID, item.Product.ID)
	assert.Equal(t, "Widget", item.Product.Name)
	assert.Equal(t, 128.99, item.Product.Price)

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "description", "embedded products carry no description")
	assert.NotContains(t, string(data), "amount\":100", "embedded products carry no stock amount")

	order.OrderItems[0].Product = nil
	response = NewOrderResponseWithItems(order)
	assert.Empty(t, response.OrderItems, "items without a loaded product are skipped")
}

func TestNewProductResponseWithItems(t *testing.T) {
	order := testOrder()
	item := order.OrderItems[0]
	product := item.Product
	product.OrderItems = []*OrderItem{item}

	response := NewProductResponseWithItems(product)
	require.Len(t, response.OrderItems, 1)
	assert.Equal(t, order.ID, response.OrderItems[0].OrderID)
	assert.Equal(t, 5, response.OrderItems[0].Amount)

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Widget"`)
	assert.Contains(t, string(data), `"order_id"`)
}
