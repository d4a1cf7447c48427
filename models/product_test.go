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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestProductPayloadApplyAllFields(t *testing.T) {
	product := &Product{}
	payload := &ProductPayload{
		Name:        strPtr("Widget"),
		Description: strPtr("A simple widget"),
		Price:       floatPtr(128.99),
		Amount:      intPtr(100),
	}

	require.NoError(t, payload.Apply(product))
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "A simple widget", product.Description)
	assert.Equal(t, 128.99, product.Price)
	assert.Equal(t, 100, product.Amount)
}

func TestProductPayloadApplyPartial(t *testing.T) {
	product := &Product{
		Name:        "Widget",
		Description: "A simple widget",
		Price:       128.99,
		Amount:      100,
	}

	require.NoError(t, (&ProductPayload{Price: floatPtr(256.99)}).Apply(product))
	assert.Equal(t, 256.99, product.Price)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "A simple widget", product.Description)
	assert.Equal(t, 100, product.Amount)

	require.NoError(t, (&ProductPayload{}).Apply(product))
	assert.Equal(t, 256.99, product.Price, "empty payload changes nothing")
}

func TestProductEntity(t *testing.T) {
	product := &Product{}
	assert.Equal(t, uuid.Nil, product.GetID())
	assert.Equal(t, "Product", product.ModelName())

	id := uuid.New()
	product.SetID(id)
	assert.Equal(t, id, product.GetID())
}
