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

package repository

import (
	"context"

	"storefront/types"
)

// CreateFunc builds a fresh entity model from a populated create schema.
// The identifier is left zero; the database assigns it on insert.
type CreateFunc[T, C any] func(input *C) *T

// UpdateFunc copies every field explicitly set on the update schema onto an
// already-fetched model, leaving absent fields untouched.
type UpdateFunc[T, U any] func(input *U, existing *T)

// CrudRepository defines the four core operations for one entity type,
// parameterized by its create and update schemas.
type CrudRepository[T, C, U any] interface {
	// Create persists a new entity built from input and returns it with
	// its generated identifier.
	Create(ctx context.Context, input *C) (*T, error)

	// Get returns the entity with the given identifier, or ErrNotFound.
	Get(ctx context.Context, id int64) (*T, error)

	// Update applies the fields set on input to existing, persists the
	// row, and returns it. Fields left unset on input are skipped.
	Update(ctx context.Context, existing *T, input *U) (*T, error)

	// Remove deletes the entity with the given identifier and returns its
	// last known field values, or ErrNotFound.
	Remove(ctx context.Context, id int64) (*T, error)
}

// QueryRepository defines read operations over many rows.
type QueryRepository[T any] interface {
	// All returns every entity.
	All(ctx context.Context) ([]*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)
}

// Repository combines the CRUD and query operations.
type Repository[T, C, U any] interface {
	CrudRepository[T, C, U]
	QueryRepository[T]
}
