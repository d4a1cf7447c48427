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
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

// Order is a placed order holding one item per ordered product.
type Order struct {
	bun.BaseModel `bun:"table:order,alias:o"`

	ID           uuid.UUID      `bun:"id,pk,type:varchar(36)" json:"id"`
	CreationDate types.DateTime `bun:"creation_date,notnull" json:"creation_date"`
	Status       OrderStatus    `bun:"status,notnull,type:varchar(20),default:'created'" json:"status"`

	OrderItems []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"order_items,omitempty"`
}

func (o *Order) GetID() uuid.UUID   { return o.ID }
func (o *Order) SetID(id uuid.UUID) { o.ID = id }
func (o *Order) ModelName() string  { return "Order" }

// ApplyDefaults fills the creation date and initial status when unset.
func (o *Order) ApplyDefaults() {
	if o.CreationDate.IsZero() {
		o.CreationDate = types.Now()
	}
	if o.Status == "" {
		o.Status = OrderStatusCreated
	}
}

// OrderItemPayload carries one requested product position. ProductID is kept
// as a string so malformed values surface as validation errors with the field
// they belong to.
type OrderItemPayload struct {
	ProductID *string `json:"product_id"`
	Amount    *int    `json:"amount"`
}

// OrderPayload carries the contents of an order create request.
type OrderPayload struct {
	OrderItems []OrderItemPayload `json:"order_items"`
}

// Apply builds the order items from the payload. The order and item ids are
// assigned later, on insert.
func (p *OrderPayload) Apply(model *Order) error {
	items, err := p.Items()
	if err != nil {
		return err
	}
	model.OrderItems = items
	return nil
}

// Items parses and validates the payload into order items.
func (p *OrderPayload) Items() ([]*OrderItem, error) {
	if len(p.OrderItems) == 0 {
		return nil, fmt.Errorf("order_items must contain at least one item: %w", repository.ErrInvalidInput)
	}

	items := make([]*OrderItem, 0, len(p.OrderItems))
	for _, itemPayload := range p.OrderItems {
		item, err := itemPayload.ToOrderItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ToOrderItem validates the position and converts it to an order item.
func (p *OrderItemPayload) ToOrderItem() (*OrderItem, error) {
	if p.ProductID == nil {
		return nil, fmt.Errorf("order item product_id is required: %w", repository.ErrInvalidInput)
	}
	if p.Amount == nil {
		return nil, fmt.Errorf("order item amount is required: %w", repository.ErrInvalidInput)
	}
	if *p.Amount <= 0 {
		return nil, fmt.Errorf("order item amount must be greater than 0, got %d: %w", *p.Amount, repository.ErrInvalidInput)
	}

	productID, err := uuid.Parse(*p.ProductID)
	if err != nil {
		return nil, fmt.Errorf("order item product_id %q is not a valid UUID: %w", *p.ProductID, repository.ErrInvalidInput)
	}

	return &OrderItem{ProductID: productID, Amount: *p.Amount}, nil
}

// StatusPayload updates the status of an existing order.
type StatusPayload struct {
	Status OrderStatus `json:"status"`
}

// Apply sets the new status after validating it.
func (p *StatusPayload) Apply(model *Order) error {
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid order status: %q: %w", string(p.Status), repository.ErrInvalidInput)
	}
	model.Status = p.Status
	return nil
}
