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
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AlexeyGordiychenko/shopapi/models"
	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

// pathUUID parses the :id path parameter.
func pathUUID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, newFieldError("Input should be a valid UUID", "uuid_parsing", "path", "id")
	}
	return id, nil
}

// pageParams parses the offset and limit query parameters with the API
// defaults and bounds.
func pageParams(c echo.Context) (types.PageParams, error) {
	page := types.DefaultPageParams()

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return page, newFieldError("Input should be a valid integer", "int_parsing", "query", "offset")
		}
		page.Offset = offset
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, newFieldError("Input should be a valid integer", "int_parsing", "query", "limit")
		}
		page.Limit = limit
	}

	if page.Offset < 0 {
		return page, newFieldError("Input should be greater than or equal to 0", "greater_than_equal", "query", "offset")
	}
	if page.Limit <= 0 {
		return page, newFieldError("Input should be greater than 0", "greater_than", "query", "limit")
	}
	if page.Limit > types.MaxLimit {
		return page, newFieldError(
			fmt.Sprintf("Input should be less than or equal to %d", types.MaxLimit),
			"less_than_equal", "query", "limit")
	}
	return page, nil
}

// includeParam parses the repeatable include query parameter into a relation
// set. Absent means no relations.
func includeParam(c echo.Context) (repository.Relations, error) {
	values, ok := c.QueryParams()["include"]
	if !ok {
		return nil, nil
	}
	relations, err := repository.ParseRelations(values)
	if err != nil {
		return nil, newFieldError(err.Error(), "value_error", "query", "include")
	}
	return relations, nil
}

// statusParam parses the required status query parameter.
func statusParam(c echo.Context) (models.OrderStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return "", newFieldError("Field required", "missing", "query", "status")
	}
	status, err := models.ParseOrderStatus(raw)
	if err != nil {
		return "", newFieldError(
			fmt.Sprintf("Input should be one of: %v", models.OrderStatusValues()),
			"enum", "query", "status")
	}
	return status, nil
}
