/*
 * Copyright 2025 AlexeyGordiychenko.
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

func TestIsSqlError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   bool
		wantKind SQLError
	}{
		{"nil", nil, false, UnknownErr},
		{"unrelated error", errors.New("connection refused"), false, UnknownErr},
		{"mysql duplicate key", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true, DuplicateKeyErr},
		{"mysql foreign key", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, true, ForeignKeyViolationErr},
		{"mysql unclassified number", &mysql.MySQLError{Number: 9999, Message: "something"}, true, UnknownErr},
		{"wrapped mysql error", fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1048}), true, NotNullViolationErr},
		{"sqlite unique", errors.New("UNIQUE constraint failed: product.id"), true, DuplicateKeyErr},
		{"sqlite not null", errors.New("NOT NULL constraint failed: product.name"), true, NotNullViolationErr},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), true, ForeignKeyViolationErr},
		{"sqlite missing table", errors.New("no such table: order"), true, NoTableErr},
		{"sqlite type mismatch", errors.New("datatype mismatch"), true, InvalidTypeCastErr},
		{"postgres duplicate key", errors.New(`duplicate key value violates unique constraint "product_pkey" (SQLSTATE 23505)`), true, DuplicateKeyErr},
		{"postgres undefined column", errors.New(`column "color" does not exist (SQLSTATE 42703)`), true, NoColumnErr},
		{"postgres missing table", errors.New(`relation "order" does not exist (SQLSTATE 42P01)`), true, NoTableErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, kind := IsSqlError(tt.err)
			assert.Equal(t, tt.wantIs, is)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, IsConstraintViolation(errors.New("UNIQUE constraint failed: product.id")))
	assert.True(t, IsConstraintViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsConstraintViolation(&mysql.MySQLError{Number: 1048}))
	assert.True(t, IsConstraintViolation(errors.New("new row violates check constraint (SQLSTATE 23514)")))

	assert.False(t, IsConstraintViolation(nil))
	assert.False(t, IsConstraintViolation(errors.New("no such table: order")))
	assert.False(t, IsConstraintViolation(errors.New("connection refused")))
}

func TestSQLErrorString(t *testing.T) {
	assert.Equal(t, "duplicate key", DuplicateKeyErr.String())
	assert.Equal(t, "foreign key violation", ForeignKeyViolationErr.String())
	assert.Equal(t, "no such table", NoTableErr.String())
	assert.Equal(t, "unknown", UnknownErr.String())
	assert.Equal(t, "unknown", SQLError(255).String())
}
