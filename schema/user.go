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

// UserCreate is the payload accepted by POST /users/. Fields are pointers so
// "required" checks that the key was present, not that the value is non-zero;
// an empty string is a legal value for every column here.
type UserCreate struct {
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Password  *string `json:"password" binding:"required"`
}

// Model builds a fresh User; the identifier is assigned by the database.
func (s *UserCreate) Model() *model.User {
	return &model.User{
		FirstName: *s.FirstName,
		LastName:  *s.LastName,
		Email:     *s.Email,
		Password:  *s.Password,
	}
}

// UserUpdate is the payload accepted by PUT /users/:id. Every field is
// optional.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// Apply overwrites exactly the fields present in the payload.
func (s *UserUpdate) Apply(u *model.User) {
	if s.FirstName != nil {
		u.FirstName = *s.FirstName
	}
	if s.LastName != nil {
		u.LastName = *s.LastName
	}
	if s.Email != nil {
		u.Email = *s.Email
	}
	if s.Password != nil {
		u.Password = *s.Password
	}
}
