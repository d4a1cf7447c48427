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
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/AlexeyGordiychenko/shopapi/models"
	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

// ProductService manages the product catalog.
type ProductService struct {
	repo repository.Repository[models.Product]
}

// NewProductService returns a product service backed by db.
func NewProductService(db *bun.DB) *ProductService {
	return &ProductService{
		repo: repository.NewRepository[models.Product, *models.Product](db,
			repository.WithRelation[models.Product, *models.Product](RelationOrderItems, loadProductOrderItems),
		),
	}
}

func loadProductOrderItems(query *bun.SelectQuery) *bun.SelectQuery {
	return query.Relation("OrderItems")
}

// Create stores a new product from the payload.
func (s *ProductService) Create(ctx context.Context, payload *models.ProductPayload) (*models.Product, error) {
	return s.repo.Create(ctx, payload)
}

// Get returns the product with the given id or a NotFoundError. The requested
// relations are loaded with it.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID, relations repository.Relations) (*models.Product, error) {
	return s.repo.GetByID(ctx, id, relations)
}

// List returns a page of products in creation order.
func (s *ProductService) List(ctx context.Context, page types.PageParams) ([]*models.Product, error) {
	return s.repo.GetAll(ctx, page, nil)
}

// GetAllByIDs returns the products matching the given ids.
func (s *ProductService) GetAllByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.GetBy(ctx, "id", ids, nil)
}

// Update merges the provided fields into the product and stores it.
func (s *ProductService) Update(ctx context.Context, product *models.Product, payload *models.ProductPayload) (*models.Product, error) {
	return s.repo.Update(ctx, product, payload)
}

// Delete removes the product.
func (s *ProductService) Delete(ctx context.Context, product *models.Product) error {
	if err := s.repo.Delete(ctx, product); err != nil {
		return err
	}
	logger.Infof("Product %s deleted", product.ID)
	return nil
}
