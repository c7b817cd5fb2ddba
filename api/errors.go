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
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/database"
	"storefront/utils"
)

var log = utils.NewLogger("API")

// renderValidationError answers a request whose body failed binding or
// validation. The error string is surfaced as-is so a client can see
// which field was rejected.
func renderValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// renderStorageError maps storage failures onto client-visible responses:
// duplicate keys become 409, broken references become 400, everything
// else is a 500 with a generic message. Internal details stay in the log.
func renderStorageError(c *gin.Context, name string, err error) {
	switch {
	case database.IsDuplicateKey(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": name + " already exists"})
	case database.IsForeignKeyViolation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "referenced entity does not exist"})
	default:
		log.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "request could not be processed"})
	}
}
