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
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"storefront/types"
)

type baseRepositoryImpl[T, C, U any] struct {
	db          *bun.DB
	fromCreate  CreateFunc[T, C]
	applyUpdate UpdateFunc[T, U]
}

// NewRepository returns a generic repository backed by the provided Bun DB
// with the per-entity mapping functions injected.
func NewRepository[T, C, U any](db *bun.DB, fromCreate CreateFunc[T, C], applyUpdate UpdateFunc[T, U]) Repository[T, C, U] {
	return &baseRepositoryImpl[T, C, U]{
		db:          db,
		fromCreate:  fromCreate,
		applyUpdate: applyUpdate,
	}
}

func (r *baseRepositoryImpl[T, C, U]) Create(ctx context.Context, input *C) (*T, error) {
	entity := r.fromCreate(input)
	// Bun writes the generated identifier back into the model, via
	// RETURNING or LastInsertId depending on the dialect.
	if _, err := r.db.NewInsert().Model(entity).Exec(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T, C, U]) Update(ctx context.Context, existing *T, input *U) (*T, error) {
	r.applyUpdate(input, existing)
	if _, err := r.db.NewUpdate().Model(existing).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *baseRepositoryImpl[T, C, U]) Remove(ctx context.Context, id int64) (*T, error) {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.NewDelete().Model(entity).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, C, U]) All(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.db.NewSelect().Model(&entities).Scan(ctx)
	return entities, err
}

func (r *baseRepositoryImpl[T, C, U]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	var entities []*T
	query := r.db.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}
