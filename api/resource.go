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
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront"
	"storefront/database"
	"storefront/repository"
)

// resource exposes the five CRUD routes for one entity type. The entity
// name only appears in client-facing messages ("User not found").
type resource[T, C, U any] struct {
	name string
	svc  storefront.Service[T, C, U]
}

// mountResource registers the CRUD routes for one entity under path.
func mountResource[T, C, U any](r gin.IRouter, path, name string, svc storefront.Service[T, C, U]) {
	res := &resource[T, C, U]{name: name, svc: svc}
	group := r.Group(path)
	group.POST("/", res.create)
	group.GET("/", res.list)
	group.GET("/:id", res.get)
	group.PUT("/:id", res.update)
	group.DELETE("/:id", res.remove)
}

func (res *resource[T, C, U]) create(c *gin.Context) {
	var input C
	if err := c.ShouldBindJSON(&input); err != nil {
		renderValidationError(c, err)
		return
	}
	entity, err := res.svc.Create(c.Request.Context(), &input)
	if err != nil {
		renderStorageError(c, res.name, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (res *resource[T, C, U]) list(c *gin.Context) {
	entities, err := res.svc.All(c.Request.Context())
	if err != nil {
		renderStorageError(c, res.name, err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (res *resource[T, C, U]) get(c *gin.Context) {
	id, ok := res.entityID(c)
	if !ok {
		return
	}
	entity, err := res.svc.Get(c.Request.Context(), id)
	if err != nil {
		res.renderLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (res *resource[T, C, U]) update(c *gin.Context) {
	id, ok := res.entityID(c)
	if !ok {
		return
	}
	var input U
	if err := c.ShouldBindJSON(&input); err != nil {
		renderValidationError(c, err)
		return
	}
	existing, err := res.svc.Get(c.Request.Context(), id)
	if err != nil {
		res.renderLookupError(c, err)
		return
	}
	entity, err := res.svc.Update(c.Request.Context(), existing, &input)
	if err != nil {
		renderStorageError(c, res.name, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (res *resource[T, C, U]) remove(c *gin.Context) {
	id, ok := res.entityID(c)
	if !ok {
		return
	}
	if _, err := res.svc.Remove(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			res.renderLookupError(c, err)
		case database.IsForeignKeyViolation(err):
			// Deletes are restricted while other rows reference this one.
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": res.name + " is still referenced"})
		default:
			renderStorageError(c, res.name, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": res.name + " deleted"})
}

func (res *resource[T, C, U]) entityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid identifier"})
		return 0, false
	}
	return id, true
}

func (res *resource[T, C, U]) renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": res.name + " not found"})
		return
	}
	renderStorageError(c, res.name, err)
}
