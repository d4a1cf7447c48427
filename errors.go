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
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateProducts rejects orders listing the same product twice.
var ErrDuplicateProducts = errors.New("Duplicate product IDs.")

// InsufficientStockError rejects an order item asking for more than the
// product has in stock.
type InsufficientStockError struct {
	ProductID uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Product %s not enough in stock.", e.ProductID)
}
