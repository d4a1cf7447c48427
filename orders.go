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

	"github.com/AlexeyGordiychenko/shopapi/database"
	"github.com/AlexeyGordiychenko/shopapi/models"
	"github.com/AlexeyGordiychenko/shopapi/repository"
	"github.com/AlexeyGordiychenko/shopapi/types"
)

// RelationOrderItems loads an order's items and their products.
const RelationOrderItems = "order_items"

// OrderService manages orders and keeps product stock consistent with them.
type OrderService struct {
	db       *bun.DB
	repo     repository.Repository[models.Order]
	products *ProductService
}

// NewOrderService returns an order service backed by db. Order items are
// cascaded on create and delete.
func NewOrderService(db *bun.DB, products *ProductService) *OrderService {
	repo := repository.NewRepository[models.Order, *models.Order](db,
		repository.WithRelation[models.Order, *models.Order](RelationOrderItems, loadOrderItems),
		repository.WithCreateCascade[models.Order, *models.Order](insertOrderItems),
		repository.WithDeleteCascade[models.Order, *models.Order](deleteOrderItems),
	)
	return &OrderService{db: db, repo: repo, products: products}
}

func loadOrderItems(query *bun.SelectQuery) *bun.SelectQuery {
	return query.Relation("OrderItems").Relation("OrderItems.Product")
}

func insertOrderItems(ctx context.Context, db bun.IDB, order *models.Order) error {
	if len(order.OrderItems) == 0 {
		return nil
	}
	for _, item := range order.OrderItems {
		item.OrderID = order.ID
		if item.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			item.ID = id
		}
	}
	_, err := db.NewInsert().Model(&order.OrderItems).Exec(ctx)
	return err
}

func deleteOrderItems(ctx context.Context, db bun.IDB, order *models.Order) error {
	_, err := db.NewDelete().
		Model((*models.OrderItem)(nil)).
		Where("order_id = ?", order.ID).
		Exec(ctx)
	return err
}

// Create validates the requested items against the catalog, decrements the
// product stock, and stores the order with its items. Everything runs in one
// transaction: a duplicate product id, an unknown product, or not enough
// stock leaves the database untouched.
func (s *OrderService) Create(ctx context.Context, payload *models.OrderPayload) (*models.Order, error) {
	var order *models.Order

	err := database.Scoped(ctx, s.db, func(ctx context.Context) error {
		items, err := payload.Items()
		if err != nil {
			return err
		}

		productIDs := make([]uuid.UUID, 0, len(items))
		seen := make(map[uuid.UUID]struct{}, len(items))
		for _, item := range items {
			if _, ok := seen[item.ProductID]; ok {
				return ErrDuplicateProducts
			}
			seen[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}

		products, err := s.products.GetAllByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		productsByID := make(map[uuid.UUID]*models.Product, len(products))
		for _, product := range products {
			productsByID[product.ID] = product
		}

		for _, item := range items {
			product, ok := productsByID[item.ProductID]
			if !ok {
				return &repository.NotFoundError{Model: "Product", ID: item.ProductID}
			}
			if product.Amount < item.Amount {
				return &InsufficientStockError{ProductID: product.ID}
			}
		}

		for _, item := range items {
			product := productsByID[item.ProductID]
			remaining := product.Amount - item.Amount
			if _, err := s.products.Update(ctx, product, &models.ProductPayload{Amount: &remaining}); err != nil {
				return err
			}
		}

		order, err = s.repo.Create(ctx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("Order %s created with %d items", order.ID, len(order.OrderItems))
	return order, nil
}

// Get returns the order with its items or a NotFoundError.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.repo.GetByID(ctx, id, repository.NewRelations(RelationOrderItems))
}

// List returns a page of orders with their items, in creation order.
func (s *OrderService) List(ctx context.Context, page types.PageParams) ([]*models.Order, error) {
	return s.repo.GetAll(ctx, page, repository.NewRelations(RelationOrderItems))
}

// UpdateStatus moves the order to the given status.
func (s *OrderService) UpdateStatus(ctx context.Context, order *models.Order, status models.OrderStatus) (*models.Order, error) {
	return s.repo.Update(ctx, order, &models.StatusPayload{Status: status})
}

// Delete removes the order together with its items. Product stock is not
// restored.
func (s *OrderService) Delete(ctx context.Context, order *models.Order) error {
	if err := s.repo.Delete(ctx, order); err != nil {
		return err
	}
	logger.Infof("Order %s deleted", order.ID)
	return nil
}
