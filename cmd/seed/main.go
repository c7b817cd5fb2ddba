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

// Command seed fills the database with synthetic users, products, and orders.
// It creates the schema if needed and appends to whatever is already stored.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"storefront"
	"storefront/config"
	"storefront/database"
	"storefront/model"
	"storefront/schema"
	"storefront/types"
	"storefront/utils"
)

var log = utils.NewLogger("SEED")

func main() {
	configPath := flag.String("config", utils.EnvDefaultString("STOREFRONT_CONFIG", "config.yaml"), "path to YAML configuration")
	userCount := flag.Int("users", 50, "number of users to create")
	productCount := flag.Int("products", 1200, "number of products to create")
	orderCount := flag.Int("orders", 50, "number of orders to create")
	seed := flag.Uint64("seed", 0, "faker seed, 0 means random")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	cfg.ApplyLogging()

	if _, err := database.InitDB(cfg.ConfigLoader()); err != nil {
		log.Fatalf("initialize database: %v", err)
	}
	defer func() { _ = database.CloseDB() }()

	faker := gofakeit.New(*seed)
	ctx := context.Background()

	users, err := seedUsers(ctx, faker, *userCount)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	log.Infof("created %d users", len(users))

	products, err := seedProducts(ctx, faker, *productCount)
	if err != nil {
		log.Fatalf("seed products: %v", err)
	}
	log.Infof("created %d products", len(products))

	orders, err := seedOrders(ctx, faker, *orderCount, users, products)
	if err != nil {
		log.Fatalf("seed orders: %v", err)
	}
	log.Infof("created %d orders", len(orders))
}

func seedUsers(ctx context.Context, faker *gofakeit.Faker, n int) ([]model.User, error) {
	svc := storefront.NewService((*schema.UserCreate).Model, (*schema.UserUpdate).Apply)
	users := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		email := uniqueEmail(faker, first, last, i)
		password := faker.Password(true, true, true, false, false, 12)
		input := schema.UserCreate{
			FirstName: &first,
			LastName:  &last,
			Email:     &email,
			Password:  &password,
		}
		user, err := svc.Create(ctx, &input)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// uniqueEmail derives an address from the name plus a random suffix, so
// repeated seed runs do not trip the unique index on users.email.
func uniqueEmail(faker *gofakeit.Faker, first, last string, i int) string {
	local := strings.ToLower(first) + "." + strings.ToLower(last)
	return fmt.Sprintf("%s.%d-%s@%s", local, i, strings.ToLower(faker.LetterN(4)), faker.DomainName())
}

func seedProducts(ctx context.Context, faker *gofakeit.Faker, n int) ([]model.Product, error) {
	svc := storefront.NewService((*schema.ProductCreate).Model, (*schema.ProductUpdate).Apply)
	products := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		name := faker.ProductName()
		description := faker.ProductDescription()
		price := int64(faker.Number(100, 100000))
		input := schema.ProductCreate{
			Name:        &name,
			Description: &description,
			Price:       &price,
		}
		product, err := svc.Create(ctx, &input)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func seedOrders(ctx context.Context, faker *gofakeit.Faker, n int, users []model.User, products []model.Product) ([]model.Order, error) {
	if len(users) == 0 || len(products) == 0 {
		return nil, nil
	}
	svc := storefront.NewService((*schema.OrderCreate).Model, (*schema.OrderUpdate).Apply)
	statuses := model.KnownOrderStatuses()
	orders := make([]model.Order, 0, n)
	for i := 0; i < n; i++ {
		user := users[faker.Number(0, len(users)-1)]
		product := products[faker.Number(0, len(products)-1)]
		placed := types.DateOf(faker.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()))
		status := statuses[faker.Number(0, len(statuses)-1)]
		input := schema.OrderCreate{
			UserID:    &user.ID,
			ProductID: &product.ID,
			OrderDate: &placed,
			Status:    &status,
		}
		order, err := svc.Create(ctx, &input)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
