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

// Package storefront exposes a thin generic service facade over the
// repository, bound to the global database connection.
package storefront

import (
	"context"
	"sync"

	"storefront/database"
	"storefront/repository"
	"storefront/types"
)

// Service is the entity-agnostic API consumed by the route layer and the
// seeding command. One instantiation serves one entity type together with
// its create and update schemas.
type Service[T, C, U any] interface {
	// Create persists a new entity built from the create schema.
	Create(ctx context.Context, input *C) (*T, error)

	// Get returns a single entity by its identifier.
	Get(ctx context.Context, id int64) (*T, error)

	// All returns all entities.
	All(ctx context.Context) ([]*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Update applies the update schema onto an already-fetched entity.
	Update(ctx context.Context, existing *T, input *U) (*T, error)

	// Remove deletes an entity by its identifier and returns its last
	// known state.
	Remove(ctx context.Context, id int64) (*T, error)
}

type baseServiceImpl[T, C, U any] struct {
	fromCreate  repository.CreateFunc[T, C]
	applyUpdate repository.UpdateFunc[T, U]
	repo        repository.Repository[T, C, U]
	once        sync.Once
}

// NewService returns a default Service implementation using the generic
// repository backed by the global database connection. The connection is
// resolved lazily so services can be declared before InitDB runs.
func NewService[T, C, U any](fromCreate repository.CreateFunc[T, C], applyUpdate repository.UpdateFunc[T, U]) Service[T, C, U] {
	return &baseServiceImpl[T, C, U]{
		fromCreate:  fromCreate,
		applyUpdate: applyUpdate,
	}
}

func (s *baseServiceImpl[T, C, U]) baseRepo() repository.Repository[T, C, U] {
	s.once.Do(func() {
		s.repo = repository.NewRepository(database.GetDB(), s.fromCreate, s.applyUpdate)
	})
	return s.repo
}

func (s *baseServiceImpl[T, C, U]) Create(ctx context.Context, input *C) (*T, error) {
	return s.baseRepo().Create(ctx, input)
}

func (s *baseServiceImpl[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	return s.baseRepo().Get(ctx, id)
}

func (s *baseServiceImpl[T, C, U]) All(ctx context.Context) ([]*T, error) {
	return s.baseRepo().All(ctx)
}

func (s *baseServiceImpl[T, C, U]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	return s.baseRepo().List(ctx, filter)
}

func (s *baseServiceImpl[T, C, U]) Update(ctx context.Context, existing *T, input *U) (*T, error) {
	return s.baseRepo().Update(ctx, existing, input)
}

func (s *baseServiceImpl[T, C, U]) Remove(ctx context.Context, id int64) (*T, error) {
	return s.baseRepo().Remove(ctx, id)
}
