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
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Product is a stock item that can be ordered.
type Product struct {
	bun.BaseModel `bun:"table:product,alias:p"`

	ID          uuid.UUID `bun:"id,pk,type:varchar(36)" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description,notnull" json:"description"`
	Price       float64   `bun:"price,notnull" json:"price"`
	Amount      int       `bun:"amount,notnull" json:"amount"`

	OrderItems []*OrderItem `bun:"rel:has-many,join:id=product_id" json:"-"`
}

func (p *Product) GetID() uuid.UUID   { return p.ID }
func (p *Product) SetID(id uuid.UUID) { p.ID = id }
func (p *Product) ModelName() string  { return "Product" }

// ProductPayload carries product attributes for create and update requests.
// Nil fields were not provided and keep their current values on update.
type ProductPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Amount      *int     `json:"amount"`
}

// Apply copies the provided fields onto the product.
func (p *ProductPayload) Apply(model *Product) error {
	if p.Name != nil {
		model.Name = *p.Name
	}
	if p.Description != nil {
		model.Description = *p.Description
	}
	if p.Price != nil {
		model.Price = *p.Price
	}
	if p.Amount != nil {
		model.Amount = *p.Amount
	}
	return nil
}
