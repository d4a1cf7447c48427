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

package shopapi

import (
	"github.com/uptrace/bun"

	"github.com/AlexeyGordiychenko/shopapi/models"
	"github.com/AlexeyGordiychenko/shopapi/utils"
)

var logger = utils.NewLogger("SERVICE")

const (
	// ServiceName identifies the service in status responses.
	ServiceName = "ShopAPI"

	// ServiceVersion is the released version of the service.
	ServiceVersion = "1.0.0"
)

// Services bundles the domain services behind the HTTP API.
type Services struct {
	Products *ProductService
	Orders   *OrderService
}

// NewServices wires the domain services on top of db.
func NewServices(db *bun.DB) *Services {
	products := NewProductService(db)
	return &Services{
		Products: products,
		Orders:   NewOrderService(db, products),
	}
}

// Status describes the running service for the root endpoint.
func Status() models.ApiStatus {
	return models.ApiStatus{
		Name:    ServiceName,
		Version: ServiceVersion,
		Status:  "OK",
		Message: "Service is up and running.",
	}
}
