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

	"github.com/AlexeyGordiychenko/shopapi/types"
)

// ApiStatus describes the service for the root endpoint.
type ApiStatus struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ResponseMessage is a plain detail message, used for deletions and errors.
type ResponseMessage struct {
	Detail string `json:"detail"`
}

// OrderResponse is the base order shape without items.
type OrderResponse struct {
	ID           uuid.UUID      `json:"id"`
	CreationDate types.DateTime `json:"creation_date"`
	Status       OrderStatus    `json:"status"`
}

// OrderResponseWithItemsShort includes the items as product id and amount
// pairs.
type OrderResponseWithItemsShort struct {
	OrderResponse
	OrderItems []OrderItemResponseShort `json:"order_items"`
}

// OrderResponseWithItems includes the items with their product details.
type OrderResponseWithItems struct {
	OrderResponse
	OrderItems []OrderItemResponse `json:"order_items"`
}

// OrderItemResponseShort is an item reduced to its product id and amount.
type OrderItemResponseShort struct {
	Amount    int       `json:"amount"`
	ProductID uuid.UUID `json:"product_id"`
}

// OrderItemResponse is an item with the ordered product embedded.
type OrderItemResponse struct {
	Amount  int                  `json:"amount"`
	Product OrderItemProductInfo `json:"product"`
}

// OrderItemProductInfo is the product shape embedded in order items, without
// the description and stock amount.
type OrderItemProductInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// ProductResponseWithItems is a product with the order items that reference
// it.
type ProductResponseWithItems struct {
	*Product
	OrderItems []ProductOrderItemInfo `json:"order_items"`
}

// ProductOrderItemInfo is an order item reduced to its order id and amount.
type ProductOrderItemInfo struct {
	Amount  int       `json:"amount"`
	OrderID uuid.UUID `json:"order_id"`
}

// NewOrderResponse converts an order to its base response shape.
func NewOrderResponse(order *Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CreationDate: order.CreationDate,
		Status:       order.Status,
	}
}

// NewOrderResponseWithItemsShort converts an order with loaded items to the
// short response shape.
func NewOrderResponseWithItemsShort(order *Order) OrderResponseWithItemsShort {
	items := make([]OrderItemResponseShort, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderItemResponseShort{
			Amount:    item.Amount,
			ProductID: item.ProductID,
		})
	}
	return OrderResponseWithItemsShort{
		OrderResponse: NewOrderResponse(order),
		OrderItems:    items,
	}
}

// NewProductResponseWithItems converts a product with loaded order items to
// the response shape carrying them.
func NewProductResponseWithItems(product *Product) ProductResponseWithItems {
	items := make([]ProductOrderItemInfo, 0, len(product.OrderItems))
	for _, item := range product.OrderItems {
		items = append(items, ProductOrderItemInfo{
			Amount:  item.Amount,
			OrderID: item.OrderID,
		})
	}
	return ProductResponseWithItems{
		Product:    product,
		OrderItems: items,
	}
}

// NewOrderResponseWithItems converts an order with loaded items and products
// to the detailed response shape. Items without a loaded product are skipped.
func NewOrderResponseWithItems(order *Order) OrderResponseWithItems {
	items := make([]OrderItemResponse, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		if item.Product == nil {
			continue
		}
		items = append(items, OrderItemResponse{
			Amount: item.Amount,
			Product: OrderItemProductInfo{
				ID:    item.Product.ID,
				Name:  item.Product.Name,
				Price: item.Product.Price,
			},
		})
	}
	return OrderResponseWithItems{
		OrderResponse: NewOrderResponse(order),
		OrderItems:    items,
	}
}
