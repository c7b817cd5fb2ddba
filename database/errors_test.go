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

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsSqlErrorMySQLNumbers(t *testing.T) {
	cases := []struct {
		number uint16
		want   SQLError
	}{
		{1050, ExistTableErr},
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1451, ForeignKeyViolationErr},
		{1452, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1146, NoTableErr},
		{1265, DataTruncatedErr},
		{1040, UnknownErr},
	}
	for _, c := range cases {
		err := &mysql.MySQLError{Number: c.number, Message: "boom"}
		is, kind := IsSqlError(err)
		assert.True(t, is, "number %d", c.number)
		assert.Equal(t, c.want, kind, "number %d", c.number)
	}
}

func TestIsSqlErrorWrappedDriverError(t *testing.T) {
	err := fmt.Errorf("insert users: %w", &mysql.MySQLError{Number: 1062, Message: "duplicate"})
	assert.True(t, IsDuplicateKey(err))
}

func TestIsSqlErrorMessageText(t *testing.T) {
	cases := []struct {
		msg  string
		want SQLError
	}{
		{"UNIQUE constraint failed: users.email", DuplicateKeyErr},
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"ERROR: insert violates foreign key violation (SQLSTATE 23503)", ForeignKeyViolationErr},
		{"NOT NULL constraint failed: users.email", NotNullViolationErr},
		{"no such table: users", NoTableErr},
		{"ERROR: relation \"users\" already exists (SQLSTATE 42P07)", ExistTableErr},
	}
	for _, c := range cases {
		is, kind := IsSqlError(errors.New(c.msg))
		assert.True(t, is, c.msg)
		assert.Equal(t, c.want, kind, c.msg)
	}
}

func TestIsSqlErrorUnrecognized(t *testing.T) {
	is, kind := IsSqlError(errors.New("connection refused"))
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)

	is, _ = IsSqlError(nil)
	assert.False(t, is)
}

func TestConstraintHelpers(t *testing.T) {
	dup := errors.New("UNIQUE constraint failed: users.email")
	fk := errors.New("FOREIGN KEY constraint failed")

	assert.True(t, IsDuplicateKey(dup))
	assert.False(t, IsDuplicateKey(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsConstraintViolation(dup))
	assert.True(t, IsConstraintViolation(fk))
	assert.False(t, IsConstraintViolation(errors.New("no such table: users")))
}
