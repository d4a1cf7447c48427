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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// bindJSON decodes the request body into target, rejecting unknown fields
// and attributing decode failures to the field they occurred on.
func bindJSON(c echo.Context, target interface{}) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validationFromJSONError(err)
	}
	return nil
}

func validationFromJSONError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []interface{}{"body"}
		for _, part := range strings.Split(typeErr.Field, ".") {
			if part != "" {
				loc = append(loc, part)
			}
		}
		msg := fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind())
		return &ValidationError{Fields: []FieldError{{Loc: loc, Msg: msg, Type: "type_error"}}}
	}

	if field, ok := unknownField(err); ok {
		return newFieldError("Extra inputs are not permitted", "extra_forbidden", "body", field)
	}

	return newFieldError("Invalid JSON body", "json_invalid", "body")
}

// unknownField extracts the field name from an unknown-field decode error.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field `
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}
