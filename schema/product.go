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

import "storefront/model"

// ProductCreate is the payload accepted by POST /products/. Fields are
// pointers so "required" checks key presence only; a price of 0 and an empty
// description are both legal.
type ProductCreate struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Price       *int64  `json:"price" binding:"required"`
}

// Model builds a fresh Product; the identifier is assigned by the database.
func (s *ProductCreate) Model() *model.Product {
	return &model.Product{
		Name:        *s.Name,
		Description: *s.Description,
		Price:       *s.Price,
	}
}

// ProductUpdate is the payload accepted by PUT /products/:id. Every field is
// optional.
type ProductUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}

// Apply overwrites exactly the fields present in the payload.
func (s *ProductUpdate) Apply(p *model.Product) {
	if s.Name != nil {
		p.Name = *s.Name
	}
	if s.Description != nil {
		p.Description = *s.Description
	}
	if s.Price != nil {
		p.Price = *s.Price
	}
}
