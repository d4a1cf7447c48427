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

package types

import "fmt"

// Listing bounds. Callers that omit limit get DefaultLimit.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// PageParams bounds an offset/limit listing of a collection.
type PageParams struct {
	Offset int
	Limit  int
}

// NewPageParams constructs listing bounds from raw values.
func NewPageParams(offset, limit int) PageParams {
	return PageParams{Offset: offset, Limit: limit}
}

// DefaultPageParams returns the first page with the default limit.
func DefaultPageParams() PageParams {
	return PageParams{Offset: 0, Limit: DefaultLimit}
}

// Validate reports the first out-of-range bound.
func (p PageParams) Validate() error {
	if p.Offset < 0 {
		return fmt.Errorf("offset must be greater than or equal to 0, got %d", p.Offset)
	}
	if p.Limit < 1 {
		return fmt.Errorf("limit must be greater than 0, got %d", p.Limit)
	}
	if p.Limit > MaxLimit {
		return fmt.Errorf("limit must be less than or equal to %d, got %d", MaxLimit, p.Limit)
	}
	return nil
}
