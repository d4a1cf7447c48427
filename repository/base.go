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
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/AlexeyGordiychenko/shopapi/database"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

type baseRepositoryImpl[T any, PT Model[T]] struct {
	db            *bun.DB
	relations     map[string]JoinFunc
	createCascade CascadeFunc[T]
	deleteCascade CascadeFunc[T]
}

// Option configures a repository at construction time.
type Option[T any, PT Model[T]] func(*baseRepositoryImpl[T, PT])

// WithRelation registers a named relation loader. Queries asking for an
// unregistered name fail with an UnsupportedRelationError. Registering with
// an empty name or a nil loader is a programmer error and panics.
func WithRelation[T any, PT Model[T]](name string, join JoinFunc) Option[T, PT] {
	if name == "" || join == nil {
		panic("repository: relation registration requires a name and a join function")
	}
	return func(r *baseRepositoryImpl[T, PT]) {
		r.relations[name] = join
	}
}

// WithCreateCascade registers a function that runs after the entity insert,
// inside the same transaction.
func WithCreateCascade[T any, PT Model[T]](cascade CascadeFunc[T]) Option[T, PT] {
	return func(r *baseRepositoryImpl[T, PT]) {
		r.createCascade = cascade
	}
}

// WithDeleteCascade registers a function that runs before the entity delete,
// inside the same transaction.
func WithDeleteCascade[T any, PT Model[T]](cascade CascadeFunc[T]) Option[T, PT] {
	return func(r *baseRepositoryImpl[T, PT]) {
		r.deleteCascade = cascade
	}
}

// NewRepository returns a generic repository backed by the provided Bun DB.
func NewRepository[T any, PT Model[T]](db *bun.DB, opts ...Option[T, PT]) Repository[T] {
	r := &baseRepositoryImpl[T, PT]{
		db:        db,
		relations: make(map[string]JoinFunc),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *baseRepositoryImpl[T, PT]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T, PT]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T, PT]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T, PT]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T, PT]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T, PT]) modelName() string {
	return PT(new(T)).ModelName()
}

// Create builds a new entity from defaults, then the patch, then an assigned
// UUIDv7 id, and inserts it. A registered create cascade runs in the same
// transaction.
func (r *baseRepositoryImpl[T, PT]) Create(ctx context.Context, patch Patch[T]) (*T, error) {
	entity := new(T)
	model := PT(entity)

	if defaulter, ok := any(model).(Defaulter); ok {
		defaulter.ApplyDefaults()
	}
	if patch != nil {
		if err := patch.Apply(entity); err != nil {
			return nil, err
		}
	}
	if model.GetID() == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s id: %w", r.modelName(), err)
		}
		model.SetID(id)
	}

	err := database.Scoped(ctx, r.db, func(ctx context.Context) error {
		idb := database.FromContext(ctx, r.db)
		if _, err := idb.NewInsert().Model(entity).Exec(ctx); err != nil {
			return err
		}
		if r.createCascade != nil {
			return r.createCascade(ctx, idb, entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// GetBy returns the entities matching field = value. A slice value turns the
// match into an IN clause. Results are deduplicated by id.
func (r *baseRepositoryImpl[T, PT]) GetBy(ctx context.Context, field string, value interface{}, relations Relations) ([]*T, error) {
	var entities []*T
	idb := database.FromContext(ctx, r.db)

	query := idb.NewSelect().Model(&entities)
	query, err := r.applyRelations(query, relations)
	if err != nil {
		return nil, err
	}
	query, err = r.whereField(query, field, value)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return dedupByID[T, PT](entities), nil
}

// GetOneBy returns the single entity matching field = value, nil when there
// is none, and ErrMultipleResults when there are several distinct ones.
func (r *baseRepositoryImpl[T, PT]) GetOneBy(ctx context.Context, field string, value interface{}, relations Relations) (*T, error) {
	entities, err := r.GetBy(ctx, field, value, relations)
	if err != nil {
		return nil, err
	}
	switch len(entities) {
	case 0:
		return nil, nil
	case 1:
		return entities[0], nil
	default:
		return nil, fmt.Errorf("expected one %s with %s = %v, got %d: %w",
			r.modelName(), field, value, len(entities), ErrMultipleResults)
	}
}

// GetByID returns the entity with the given id or a NotFoundError.
func (r *baseRepositoryImpl[T, PT]) GetByID(ctx context.Context, id uuid.UUID, relations Relations) (*T, error) {
	entity, err := r.GetOneBy(ctx, "id", id, relations)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &NotFoundError{Model: r.modelName(), ID: id}
	}
	return entity, nil
}

// GetAll returns a page of entities ordered by id. With UUIDv7 ids that is
// creation order.
func (r *baseRepositoryImpl[T, PT]) GetAll(ctx context.Context, page types.PageParams, relations Relations) ([]*T, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	}

	var entities []*T
	idb := database.FromContext(ctx, r.db)

	query := idb.NewSelect().Model(&entities)
	query, err := r.applyRelations(query, relations)
	if err != nil {
		return nil, err
	}
	err = query.
		OrderExpr("?TableAlias.id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return dedupByID[T, PT](entities), nil
}

// Update applies the patch onto the model and writes it back by primary key.
// The id is never part of a patch and stays unchanged.
func (r *baseRepositoryImpl[T, PT]) Update(ctx context.Context, model *T, patch Patch[T]) (*T, error) {
	if model == nil {
		return nil, fmt.Errorf("model cannot be nil: %w", ErrInvalidInput)
	}
	if patch != nil {
		if err := patch.Apply(model); err != nil {
			return nil, err
		}
	}

	err := database.Scoped(ctx, r.db, func(ctx context.Context) error {
		idb := database.FromContext(ctx, r.db)
		_, err := idb.NewUpdate().Model(model).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}

// Delete removes the model by primary key. A registered delete cascade runs
// first, in the same transaction.
func (r *baseRepositoryImpl[T, PT]) Delete(ctx context.Context, model *T) error {
	if model == nil {
		return fmt.Errorf("model cannot be nil: %w", ErrInvalidInput)
	}
	return database.Scoped(ctx, r.db, func(ctx context.Context) error {
		idb := database.FromContext(ctx, r.db)
		if r.deleteCascade != nil {
			if err := r.deleteCascade(ctx, idb, model); err != nil {
				return err
			}
		}
		_, err := idb.NewDelete().Model(model).WherePK().Exec(ctx)
		return err
	})
}

func (r *baseRepositoryImpl[T, PT]) applyRelations(query *bun.SelectQuery, relations Relations) (*bun.SelectQuery, error) {
	if len(relations) == 0 {
		return query, nil
	}
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		join, ok := r.relations[name]
		if !ok {
			return nil, &UnsupportedRelationError{Model: r.modelName(), Relation: name}
		}
		query = join(query)
	}
	return query, nil
}

func (r *baseRepositoryImpl[T, PT]) whereField(query *bun.SelectQuery, field string, value interface{}) (*bun.SelectQuery, error) {
	if field == "" {
		return nil, fmt.Errorf("field name cannot be empty: %w", ErrInvalidInput)
	}
	if isMultiValue(value) {
		return query.Where("?TableAlias.? IN (?)", bun.Ident(field), bun.In(value)), nil
	}
	return query.Where("?TableAlias.? = ?", bun.Ident(field), value), nil
}

// isMultiValue reports whether value should match as an IN clause. Byte
// slices count as scalars.
func isMultiValue(value interface{}) bool {
	if value == nil {
		return false
	}
	if _, ok := value.([]byte); ok {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Slice
}

func dedupByID[T any, PT Model[T]](entities []*T) []*T {
	if len(entities) < 2 {
		return entities
	}
	seen := make(map[uuid.UUID]struct{}, len(entities))
	result := entities[:0]
	for _, entity := range entities {
		id := PT(entity).GetID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, entity)
	}
	return result
}
