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
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/AlexeyGordiychenko/shopapi/types"
)

// Entity is implemented by every persisted model.
type Entity interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	ModelName() string
}

// Model constrains a repository to pointer-to-struct entity types.
type Model[T any] interface {
	*T
	Entity
}

// Defaulter fills unset fields before an entity is inserted.
type Defaulter interface {
	ApplyDefaults()
}

// Patch copies the attributes a request provided onto a model. Fields the
// request did not set stay untouched.
type Patch[T any] interface {
	Apply(model *T) error
}

// Relations is the set of relation names to load with a query.
type Relations map[string]struct{}

// NewRelations builds a relation set from names.
func NewRelations(names ...string) Relations {
	relations := make(Relations, len(names))
	for _, name := range names {
		relations[name] = struct{}{}
	}
	return relations
}

// ParseRelations converts a dynamically shaped value into Relations. Only
// set-of-names shapes are accepted. A bare string is rejected, never iterated
// character by character.
func ParseRelations(value interface{}) (Relations, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Relations:
		return v, nil
	case map[string]struct{}:
		return Relations(v), nil
	case map[string]bool:
		relations := make(Relations, len(v))
		for name, include := range v {
			if include {
				relations[name] = struct{}{}
			}
		}
		return relations, nil
	case []string:
		return relationsFromNames(v)
	case []interface{}:
		names := make([]string, 0, len(v))
		for _, element := range v {
			name, ok := element.(string)
			if !ok {
				return nil, fmt.Errorf("relation name must be a string, got %T: %w", element, ErrInvalidInput)
			}
			names = append(names, name)
		}
		return relationsFromNames(names)
	case string:
		return nil, fmt.Errorf("relations must be a set of names, got the bare string %q: %w", v, ErrInvalidInput)
	default:
		return nil, fmt.Errorf("relations must be a set, got %T: %w", value, ErrInvalidInput)
	}
}

func relationsFromNames(names []string) (Relations, error) {
	relations := make(Relations, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("relation name must not be empty: %w", ErrInvalidInput)
		}
		if _, ok := relations[name]; ok {
			return nil, fmt.Errorf("duplicate relation name %q: %w", name, ErrInvalidInput)
		}
		relations[name] = struct{}{}
	}
	return relations, nil
}

// JoinFunc extends a select query with a relation load.
type JoinFunc func(query *bun.SelectQuery) *bun.SelectQuery

// CascadeFunc runs next to an entity insert or delete, on the same executor.
type CascadeFunc[T any] func(ctx context.Context, db bun.IDB, model *T) error

// Repository is a generic data access layer for one entity type. Operations
// join the transaction carried by ctx when one is active.
type Repository[T any] interface {
	Create(ctx context.Context, patch Patch[T]) (*T, error)

	GetBy(ctx context.Context, field string, value interface{}, relations Relations) ([]*T, error)

	GetOneBy(ctx context.Context, field string, value interface{}, relations Relations) (*T, error)

	GetByID(ctx context.Context, id uuid.UUID, relations Relations) (*T, error)

	GetAll(ctx context.Context, page types.PageParams, relations Relations) ([]*T, error)

	Update(ctx context.Context, model *T, patch Patch[T]) (*T, error)

	Delete(ctx context.Context, model *T) error

	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
