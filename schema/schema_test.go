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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront/model"
	"storefront/types"
)

func ptr[T any](v T) *T { return &v }

func TestUserCreateModel(t *testing.T) {
	input := UserCreate{
		FirstName: ptr("Ann"),
		LastName:  ptr("Lee"),
		Email:     ptr("ann@example.com"),
		Password:  ptr("secret"),
	}
	user := input.Model()

	assert.Zero(t, user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestUserUpdateApplyPartial(t *testing.T) {
	user := &model.User{ID: 7, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret"}

	email := "ann.lee@example.com"
	(&UserUpdate{Email: &email}).Apply(user)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "ann.lee@example.com", user.Email)
}

func TestUserUpdateApplyEmpty(t *testing.T) {
	user := &model.User{ID: 7, FirstName: "Ann", LastName: "Lee"}

	(&UserUpdate{}).Apply(user)

	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "Lee", user.LastName)
}

func TestProductUpdateApply(t *testing.T) {
	product := &model.Product{ID: 3, Name: "Widget", Description: "old", Price: 100}

	price := int64(250)
	desc := "new"
	(&ProductUpdate{Price: &price, Description: &desc}).Apply(product)

	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "new", product.Description)
	assert.Equal(t, int64(250), product.Price)
}

func TestProductCreateModelZeroValues(t *testing.T) {
	input := ProductCreate{
		Name:        ptr("Free Sample"),
		Description: ptr(""),
		Price:       ptr(int64(0)),
	}
	product := input.Model()

	assert.Zero(t, product.ID)
	assert.Equal(t, "Free Sample", product.Name)
	assert.Empty(t, product.Description)
	assert.Equal(t, int64(0), product.Price)
}

func TestOrderCreateModel(t *testing.T) {
	input := OrderCreate{
		UserID:    ptr(int64(1)),
		ProductID: ptr(int64(2)),
		OrderDate: ptr(types.NewDate(2026, time.March, 1)),
		Status:    ptr(model.OrderStatusProcessed),
	}
	order := input.Model()

	assert.Zero(t, order.ID)
	assert.Equal(t, int64(1), order.UserID)
	assert.Equal(t, "2026-03-01", order.OrderDate.String())
	assert.Equal(t, model.OrderStatusProcessed, order.Status)
}

func TestOrderUpdateApply(t *testing.T) {
	order := &model.Order{ID: 9, UserID: 1, ProductID: 2, OrderDate: types.NewDate(2026, time.March, 1), Status: model.OrderStatusProcessed}

	status := model.OrderStatusShipping
	date := types.NewDate(2026, time.March, 5)
	(&OrderUpdate{Status: &status, OrderDate: &date}).Apply(order)

	assert.Equal(t, int64(1), order.UserID)
	assert.Equal(t, "2026-03-05", order.OrderDate.String())
	assert.Equal(t, model.OrderStatusShipping, order.Status)
}
