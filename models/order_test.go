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
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

func TestOrderApplyDefaults(t *testing.T) {
	order := &Order{}
	order.ApplyDefaults()

	assert.Equal(t, OrderStatusCreated, order.Status)
	assert.False(t, order.CreationDate.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), order.CreationDate.Time(), time.Second)

	fixed := types.NewDateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	order = &Order{CreationDate: fixed, Status: OrderStatusShipped}
	order.ApplyDefaults()
	assert.Equal(t, fixed, order.CreationDate, "set values stay untouched")
	assert.Equal(t, OrderStatusShipped, order.Status)
}

func TestOrderPayloadItems(t *testing.T) {
	productID := uuid.New()
	payload := &OrderPayload{OrderItems: []OrderItemPayload{
		{ProductID: strPtr(productID.String()), Amount: intPtr(5)},
	}}

	items, err := payload.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, 5, items[0].Amount)
	assert.Equal(t, uuid.Nil, items[0].ID, "ids are assigned on insert")
}

func TestOrderPayloadItemsInvalid(t *testing.T) {
	valid := func() OrderItemPayload {
		return OrderItemPayload{ProductID: strPtr(uuid.New().String()), Amount: intPtr(1)}
	}

	tests := []struct {
		name    string
		payload OrderPayload
	}{
		{name: "no items", payload: OrderPayload{}},
		{name: "empty items", payload: OrderPayload{OrderItems: []OrderItemPayload{}}},
		{
			name: "missing product id",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				{Amount: intPtr(1)},
			}},
		},
		{
			name: "missing amount",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				{ProductID: strPtr(uuid.New().String())},
			}},
		},
		{
			name: "zero amount",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				{ProductID: strPtr(uuid.New().String()), Amount: intPtr(0)},
			}},
		},
		{
			name: "negative amount",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				{ProductID: strPtr(uuid.New().String()), Amount: intPtr(-3)},
			}},
		},
		{
			name: "malformed product id",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				{ProductID: strPtr("123"), Amount: intPtr(1)},
			}},
		},
		{
			name: "second item invalid",
			payload: OrderPayload{OrderItems: []OrderItemPayload{
				valid(),
				{ProductID: strPtr("not-a-uuid"), Amount: intPtr(1)},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.payload.Items()
			assert.ErrorIs(t, err, repository.ErrInvalidInput)
		})
	}
}

func TestOrderPayloadApply(t *testing.T) {
	productID := uuid.New()
	order := &Order{}
	payload := &OrderPayload{OrderItems: []OrderItemPayload{
		{ProductID: strPtr(productID.String()), Amount: intPtr(2)},
	}}

	require.NoError(t, payload.Apply(order))
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, productID, order.OrderItems[0].ProductID)

	err := (&OrderPayload{}).Apply(order)
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestStatusPayloadApply(t *testing.T) {
	order := &Order{Status: OrderStatusCreated}

	require.NoError(t, (&StatusPayload{Status: OrderStatusShipped}).Apply(order))
	assert.Equal(t, OrderStatusShipped, order.Status)

	err := (&StatusPayload{Status: "test_status"}).Apply(order)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrInvalidInput))
	assert.Equal(t, OrderStatusShipped, order.Status, "invalid status leaves the order unchanged")
}
