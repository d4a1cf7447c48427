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

package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound marks lookups by id that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks payloads or parameters with an invalid shape.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMultipleResults marks single-row lookups that matched more than one
	// distinct row.
	ErrMultipleResults = errors.New("multiple results")

	// ErrUnsupportedRelation marks relation names no loader is registered for.
	ErrUnsupportedRelation = errors.New("unsupported relation")
)

// NotFoundError reports a missing entity by model name and id.
type NotFoundError struct {
	Model string
	ID    uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found.", e.Model, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// UnsupportedRelationError reports a relation name the repository cannot load.
type UnsupportedRelationError struct {
	Model    string
	Relation string
}

func (e *UnsupportedRelationError) Error() string {
	return fmt.Sprintf("unsupported relation %q for model %s", e.Relation, e.Model)
}

func (e *UnsupportedRelationError) Unwrap() error { return ErrUnsupportedRelation }
