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

package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/models"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	orders *shopapi.OrderService
}

// NewOrderHandler returns a handler backed by the order service.
func NewOrderHandler(orders *shopapi.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Register mounts the order routes on the group.
func (h *OrderHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context) error {
	payload := new(models.OrderPayload)
	if err := bindJSON(c, payload); err != nil {
		return err
	}
	if err := validateOrderItems(payload); err != nil {
		return err
	}

	order, err := h.orders.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewOrderResponseWithItemsShort(order))
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	responses := make([]models.OrderResponseWithItemsShort, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, models.NewOrderResponseWithItemsShort(order))
	}
	return c.JSON(http.StatusOK, responses)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewOrderResponseWithItemsShort(order))
}

// UpdateStatus handles PATCH /orders/:id/status. The new status comes from
// the status query parameter; the response carries no items.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	order, err := h.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	order, err = h.orders.UpdateStatus(ctx, order, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewOrderResponse(order))
}

// Delete handles DELETE /orders/:id. The order's items are removed with it.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	order, err := h.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.orders.Delete(ctx, order); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ResponseMessage{Detail: "Deleted successfully."})
}

// validateOrderItems reports the first invalid order item field.
func validateOrderItems(payload *models.OrderPayload) error {
	if payload.OrderItems == nil {
		return newFieldError("Field required", "missing", "body", "order_items")
	}
	if len(payload.OrderItems) == 0 {
		return newFieldError(
			"List should have at least 1 item after validation, not 0",
			"too_short", "body", "order_items")
	}
	for i, item := range payload.OrderItems {
		if item.ProductID == nil {
			return newFieldError("Field required", "missing", "body", "order_items", i, "product_id")
		}
		if _, err := uuid.Parse(*item.ProductID); err != nil {
			return newFieldError("Input should be a valid UUID", "uuid_parsing", "body", "order_items", i, "product_id")
		}
		if item.Amount == nil {
			return newFieldError("Field required", "missing", "body", "order_items", i, "amount")
		}
		if *item.Amount <= 0 {
			return newFieldError("Input should be greater than 0", "greater_than", "body", "order_items", i, "amount")
		}
	}
	return nil
}
