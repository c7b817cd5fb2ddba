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

// Package model declares the persisted entities and registers them with the
// database layer so their tables and foreign keys are created on startup.
package model

import (
	"github.com/uptrace/bun"

	"storefront/database"
	"storefront/types"
)

// User is a registered customer. The password column holds whatever the
// client sent; hashing is outside the scope of this service.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	FirstName string `bun:"first_name,notnull" json:"first_name"`
	LastName  string `bun:"last_name,notnull" json:"last_name"`
	Email     string `bun:"email,notnull,unique" json:"email"`
	Password  string `bun:"password,notnull" json:"password"`
}

// Product is a single sellable item. Price is an integer in minor currency
// units, agnostic of the currency itself.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Description string `bun:"description,notnull" json:"description"`
	Price       int64  `bun:"price,notnull" json:"price"`
}

// Order links one user to one product on a calendar date. Status is a free
// string; the well-known values live in status.go but are not enforced.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64      `bun:"user_id,notnull" json:"user_id"`
	ProductID int64      `bun:"product_id,notnull" json:"product_id"`
	OrderDate types.Date `bun:"order_date,type:date,notnull" json:"order_date"`
	Status    string     `bun:"status,notnull" json:"status"`
}

func init() {
	// Referenced tables must exist before the tables referencing them.
	database.RegisteredModel(database.NewModelAdapter((*User)(nil), 1))
	database.RegisteredModel(database.NewModelAdapter((*Product)(nil), 2))
	database.RegisteredModel(database.NewModelAdapter((*Order)(nil), 3))

	// Deleting a user or product that still has orders is blocked, not
	// cascaded.
	database.RegisteredForeignKey(database.ForeignKeyConstraint{
		Table:           "orders",
		Column:          "user_id",
		ReferenceTable:  "users",
		ReferenceColumn: "id",
		OnDelete:        "RESTRICT",
	})
	database.RegisteredForeignKey(database.ForeignKeyConstraint{
		Table:           "orders",
		Column:          "product_id",
		ReferenceTable:  "products",
		ReferenceColumn: "id",
		OnDelete:        "RESTRICT",
	})
}
