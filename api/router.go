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

package api

import (
	"github.com/gin-gonic/gin"

	"storefront"
	"storefront/schema"
)

// Options controls cross-cutting router behavior.
type Options struct {
	// AllowedOrigins configures CORS; a "*" entry allows every origin.
	AllowedOrigins []string
}

// NewRouter builds the HTTP surface: one CRUD resource per entity plus
// a health endpoint.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(gin.Recovery(), requestLogger())
	if len(opts.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(opts.AllowedOrigins))
	}

	router.GET("/healthz", healthz)

	mountResource(router, "/users", "User",
		storefront.NewService((*schema.UserCreate).Model, (*schema.UserUpdate).Apply))
	mountResource(router, "/products", "Product",
		storefront.NewService((*schema.ProductCreate).Model, (*schema.ProductUpdate).Apply))
	mountResource(router, "/orders", "Order",
		storefront.NewService((*schema.OrderCreate).Model, (*schema.OrderUpdate).Apply))

	return router
}
