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

	"github.com/labstack/echo/v4"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/models"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	products *shopapi.ProductService
}

// NewProductHandler returns a handler backed by the product service.
func NewProductHandler(products *shopapi.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Register mounts the product routes on the group.
func (h *ProductHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	payload := new(models.ProductPayload)
	if err := bindJSON(c, payload); err != nil {
		return err
	}
	if err := requireProductFields(payload); err != nil {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	products, err := h.products.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id. Repeated include query parameters request
// relation loading, for example include=order_items.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	relations, err := includeParam(c)
	if err != nil {
		return err
	}

	product, err := h.products.Get(c.Request().Context(), id, relations)
	if err != nil {
		return err
	}
	if _, ok := relations[shopapi.RelationOrderItems]; ok {
		return c.JSON(http.StatusOK, models.NewProductResponseWithItems(product))
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /products/:id. Absent fields keep their current values.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	payload := new(models.ProductPayload)
	if err := bindJSON(c, payload); err != nil {
		return err
	}

	ctx := c.Request().Context()
	product, err := h.products.Get(ctx, id, nil)
	if err != nil {
		return err
	}
	product, err = h.products.Update(ctx, product, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	product, err := h.products.Get(ctx, id, nil)
	if err != nil {
		return err
	}
	if err := h.products.Delete(ctx, product); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ResponseMessage{Detail: "Deleted successfully."})
}

// requireProductFields reports the first missing field of a create payload.
func requireProductFields(payload *models.ProductPayload) error {
	if payload.Name == nil {
		return newFieldError("Field required", "missing", "body", "name")
	}
	if payload.Description == nil {
		return newFieldError("Field required", "missing", "body", "description")
	}
	if payload.Price == nil {
		return newFieldError("Field required", "missing", "body", "price")
	}
	if payload.Amount == nil {
		return newFieldError("Field required", "missing", "body", "amount")
	}
	return nil
}
