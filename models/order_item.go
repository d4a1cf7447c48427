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

// OrderItem is a single product position inside an order.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_item,alias:oi"`

	ID        uuid.UUID `bun:"id,pk,type:varchar(36)" json:"id"`
	OrderID   uuid.UUID `bun:"order_id,type:varchar(36)" json:"order_id"`
	ProductID uuid.UUID `bun:"product_id,type:varchar(36)" json:"product_id"`
	Amount    int       `bun:"amount,notnull" json:"amount"`

	Order   *Order   `bun:"rel:belongs-to,join:order_id=id" json:"-"`
	Product *Product `bun:"rel:belongs-to,join:product_id=id" json:"-"`
}

func (i *OrderItem) GetID() uuid.UUID   { return i.ID }
func (i *OrderItem) SetID(id uuid.UUID) { i.ID = id }
func (i *OrderItem) ModelName() string  { return "OrderItem" }
