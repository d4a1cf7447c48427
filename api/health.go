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
	"github.com/AlexeyGordiychenko/shopapi/database"
)

// StatusHandler serves the service status and database health endpoints.
type StatusHandler struct{}

// NewStatusHandler returns a handler for the status routes.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Register mounts the status routes on the echo instance.
func (h *StatusHandler) Register(e *echo.Echo) {
	e.GET("/", h.Status)
	e.GET("/health", h.Health)
}

// Status handles GET /.
func (h *StatusHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, shopapi.Status())
}

// Health handles GET /health. It reports 503 while the database is
// unreachable.
func (h *StatusHandler) Health(c echo.Context) error {
	status := database.GetHealthStatus(c.Request().Context())
	code := http.StatusOK
	if status == nil || !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
