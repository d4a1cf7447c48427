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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/utils"
)

var logger = utils.NewLogger("API")

// FieldError locates a single validation failure. Loc starts with the part
// of the request (body, path, query) and ends with the field name.
type FieldError struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

// ValidationError aggregates the validation failures of one request. It
// renders as a 422 response listing every field error.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		if len(field.Loc) > 0 {
			names = append(names, fmt.Sprint(field.Loc[len(field.Loc)-1]))
		}
	}
	return fmt.Sprintf("validation failed for: %s", strings.Join(names, ", "))
}

func newFieldError(msg, errType string, loc ...interface{}) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Loc: loc, Msg: msg, Type: errType}}}
}

// ErrorHandler converts errors into the API's error payloads: a list of
// field errors for validation failures, a plain detail message otherwise.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status int
		detail interface{}
	)

	var validationErr *ValidationError
	var notFoundErr *repository.NotFoundError
	var stockErr *shopapi.InsufficientStockError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		detail = validationErr.Fields
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		detail = notFoundErr.Error()
	case errors.Is(err, shopapi.ErrDuplicateProducts):
		status = http.StatusBadRequest
		detail = shopapi.ErrDuplicateProducts.Error()
	case errors.As(err, &stockErr):
		status = http.StatusBadRequest
		detail = stockErr.Error()
	case errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, repository.ErrUnsupportedRelation):
		status = http.StatusUnprocessableEntity
		detail = err.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail = fmt.Sprint(httpErr.Message)
	default:
		logger.WithError(err).Error("Unhandled request error")
		status = http.StatusInternalServerError
		detail = http.StatusText(http.StatusInternalServerError)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, map[string]interface{}{"detail": detail})
	}
	if writeErr != nil {
		logger.WithError(writeErr).Error("Failed to write error response")
	}
}
