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

package models

import (
	"fmt"

	"github.com/AlexeyGordiychenko/shopapi/types"
)

// OrderStatus is the lifecycle state of an order. It is stored and
// serialized as its lowercase name.
type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

var orderStatusNumbers = map[OrderStatus]int{
	OrderStatusCreated:    1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
	OrderStatusCanceled:   5,
}

var orderStatusDescs = map[OrderStatus]string{
	OrderStatusCreated:    "order has been created",
	OrderStatusProcessing: "order is being processed",
	OrderStatusShipped:    "order has been shipped",
	OrderStatusDelivered:  "order has been delivered",
	OrderStatusCanceled:   "order has been canceled",
}

var _ types.BaseEnum = OrderStatus("")

// OrderStatusValues returns all valid statuses in lifecycle order.
func OrderStatusValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusCreated,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCanceled,
	}
}

// ParseOrderStatus converts a string into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %q", value)
	}
	return status, nil
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusNumbers[s]
	return ok
}

func (s OrderStatus) Number() int {
	if number, ok := orderStatusNumbers[s]; ok {
		return number
	}
	return types.IllegalValue
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) Name() string {
	if s.IsValid() {
		return string(s)
	}
	return types.IllegalName
}

func (s OrderStatus) Desc() string {
	if desc, ok := orderStatusDescs[s]; ok {
		return desc
	}
	return types.IllegalDesc
}
