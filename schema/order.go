/*
 * Copyright 2025 tomoncle.
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

package schema

import (
	"storefront/model"
	"storefront/types"
)

// OrderCreate is the payload accepted by POST /orders/. The order date is a
// "YYYY-MM-DD" string on the wire; a malformed date fails JSON binding before
// the repository is ever invoked. Referenced ids are not checked here, the
// database foreign keys are the only existence check. Fields are pointers so
// "required" checks key presence only.
type OrderCreate struct {
	UserID    *int64      `json:"user_id" binding:"required"`
	ProductID *int64      `json:"product_id" binding:"required"`
	OrderDate *types.Date `json:"order_date" binding:"required"`
	Status    *string     `json:"status" binding:"required"`
}

// Model builds a fresh Order; the identifier is assigned by the database.
func (s *OrderCreate) Model() *model.Order {
	return &model.Order{
		UserID:    *s.UserID,
		ProductID: *s.ProductID,
		OrderDate: *s.OrderDate,
		Status:    *s.Status,
	}
}

// OrderUpdate is the payload accepted by PUT /orders/:id. Every field is
// optional.
type OrderUpdate struct {
	UserID    *int64      `json:"user_id"`
	ProductID *int64      `json:"product_id"`
	OrderDate *types.Date `json:"order_date"`
	Status    *string     `json:"status"`
}

// Apply overwrites exactly the fields present in the payload.
func (s *OrderUpdate) Apply(o *model.Order) {
	if s.UserID != nil {
		o.UserID = *s.UserID
	}
	if s.ProductID != nil {
		o.ProductID = *s.ProductID
	}
	if s.OrderDate != nil {
		o.OrderDate = *s.OrderDate
	}
	if s.Status != nil {
		o.Status = *s.Status
	}
}
