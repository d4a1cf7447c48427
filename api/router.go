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
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/utils"
)

// NewRouter builds the echo instance serving the API.
func NewRouter(services *shopapi.Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Output: utils.NewLogger("HTTP").Writer(),
	}))
	e.Use(middleware.Recover())

	NewStatusHandler().Register(e)

	v1 := e.Group("/api/v1")
	NewProductHandler(services.Products).Register(v1.Group("/products"))
	NewOrderHandler(services.Orders).Register(v1.Group("/orders"))

	return e
}
