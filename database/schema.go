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
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// ForeignKeyConstraint describes a foreign key relationship between tables.
type ForeignKeyConstraint struct {
	Table           string
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnDelete        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	ConstraintName  string
}

// GenerateConstraintName returns the explicit name or a derived name.
func (fk *ForeignKeyConstraint) GenerateConstraintName() string {
	if fk.ConstraintName != "" {
		return fk.ConstraintName
	}
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// GenerateSQL returns the ALTER TABLE statement to add the constraint.
func (fk *ForeignKeyConstraint) GenerateSQL() string {
	constraintName := fk.GenerateConstraintName()
	sql := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
		fk.Table, constraintName, fk.Column, fk.ReferenceTable, fk.ReferenceColumn)

	if fk.OnDelete != "" {
		sql += fmt.Sprintf(" ON DELETE %s", fk.OnDelete)
	}
	if fk.OnUpdate != "" {
		sql += fmt.Sprintf(" ON UPDATE %s", fk.OnUpdate)
	}

	return sql
}

// getForeignKeyConstraints defines the constraints between the registered
// tables. Deletion policies are RESTRICT because row removal is handled in
// application code.
func getForeignKeyConstraints() []ForeignKeyConstraint {
	return []ForeignKeyConstraint{
		{
			Table:           "order_item",
			Column:          "order_id",
			ReferenceTable:  "order",
			ReferenceColumn: "id",
			OnDelete:        "RESTRICT",
		},
		{
			Table:           "order_item",
			Column:          "product_id",
			ReferenceTable:  "product",
			ReferenceColumn: "id",
			OnDelete:        "RESTRICT",
		},
	}
}

// ForeignKeyManager manages adding and validating foreign key constraints.
type ForeignKeyManager struct {
	constraints []ForeignKeyConstraint
	logger      Logger
}

// NewForeignKeyManager creates a manager with code-defined constraints.
func NewForeignKeyManager(logger Logger) *ForeignKeyManager {
	return &ForeignKeyManager{
		constraints: getForeignKeyConstraints(),
		logger:      logger,
	}
}

// AddAllForeignKeys iterates through all constraints and adds them to the DB.
// Failures are logged and skipped, re-adding an existing constraint is not an
// error worth stopping for.
func (fkm *ForeignKeyManager) AddAllForeignKeys(ctx context.Context, db bun.IDB) error {
	for _, constraint := range fkm.constraints {
		if err := fkm.addForeignKey(ctx, db, constraint); err != nil {
			if fkm.logger != nil {
				fkm.logger.Debug("Failed to add foreign key constraint",
					"constraint", constraint.GenerateConstraintName(), "sql", constraint.GenerateSQL(), "error", err.Error())
			}
			continue
		}
		if fkm.logger != nil {
			fkm.logger.Debug("Successfully added foreign key constraint", "constraint", constraint.GenerateConstraintName())
		}
	}
	return nil
}

// addForeignKey executes a single constraint addition. Identifiers go through
// bun placeholders so reserved table names like "order" are quoted per dialect.
func (fkm *ForeignKeyManager) addForeignKey(ctx context.Context, db bun.IDB, constraint ForeignKeyConstraint) error {
	query := "ALTER TABLE ? ADD CONSTRAINT ? FOREIGN KEY (?) REFERENCES ? (?)"
	args := []interface{}{
		bun.Ident(constraint.Table),
		bun.Ident(constraint.GenerateConstraintName()),
		bun.Ident(constraint.Column),
		bun.Ident(constraint.ReferenceTable),
		bun.Ident(constraint.ReferenceColumn),
	}
	if constraint.OnDelete != "" {
		query += " ON DELETE ?"
		args = append(args, bun.Safe(constraint.OnDelete))
	}
	if constraint.OnUpdate != "" {
		query += " ON UPDATE ?"
		args = append(args, bun.Safe(constraint.OnUpdate))
	}

	_, err := db.ExecContext(ctx, query, args...)
	return err
}

// RemoveForeignKey drops a named foreign key from a table.
func (fkm *ForeignKeyManager) RemoveForeignKey(ctx context.Context, db bun.IDB, tableName, constraintName string) error {
	_, err := db.ExecContext(ctx, "ALTER TABLE ? DROP CONSTRAINT ?", bun.Ident(tableName), bun.Ident(constraintName))
	return err
}

// GetConstraintsByTable returns the constraints defined for a table.
func (fkm *ForeignKeyManager) GetConstraintsByTable(tableName string) []ForeignKeyConstraint {
	var result []ForeignKeyConstraint
	for _, constraint := range fkm.constraints {
		if strings.EqualFold(constraint.Table, tableName) {
			result = append(result, constraint)
		}
	}
	return result
}

// ListAllConstraints returns all configured constraints.
func (fkm *ForeignKeyManager) ListAllConstraints() []ForeignKeyConstraint {
	return fkm.constraints
}

// ValidateConstraints checks the configured constraints for common issues.
func (fkm *ForeignKeyManager) ValidateConstraints() []error {
	var errors []error

	for _, constraint := range fkm.constraints {
		if constraint.Table == "" {
			errors = append(errors, fmt.Errorf("table name cannot be empty"))
		}
		if constraint.Column == "" {
			errors = append(errors, fmt.Errorf("column name cannot be empty: %s", constraint.Table))
		}
		if constraint.ReferenceTable == "" {
			errors = append(errors, fmt.Errorf("reference table name cannot be empty: %s.%s", constraint.Table, constraint.Column))
		}
		if constraint.ReferenceColumn == "" {
			errors = append(errors, fmt.Errorf("reference column name cannot be empty: %s.%s -> %s", constraint.Table, constraint.Column, constraint.ReferenceTable))
		}

		// Validate delete policy
		if constraint.OnDelete != "" {
			validActions := []string{"CASCADE", "RESTRICT", "SET NULL", "NO ACTION"}
			valid := false
			for _, action := range validActions {
				if strings.EqualFold(constraint.OnDelete, action) {
					valid = true
					break
				}
			}
			if !valid {
				errors = append(errors, fmt.Errorf("invalid delete policy: %s, constraint: %s", constraint.OnDelete, constraint.GenerateConstraintName()))
			}
		}
	}

	return errors
}

// SchemaManager creates tables for the registered models and wires their
// foreign keys.
type SchemaManager struct {
	db     *bun.DB
	logger Logger
}

// NewSchemaManager returns a schema manager for the given database.
func NewSchemaManager(db *bun.DB, logger Logger) *SchemaManager {
	if logger == nil {
		logger = GetLogger()
	}
	return &SchemaManager{db: db, logger: logger}
}

// CreateTables creates a table for every registered model, in registration
// priority order so referenced tables exist before referencing ones.
func (sm *SchemaManager) CreateTables(ctx context.Context) error {
	for _, model := range RegisteredModelInstances() {
		_, err := sm.db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table %T: %w", model, err)
		}
	}
	return nil
}

// AddForeignKeys applies the configured constraints. SQLite cannot add
// constraints to existing tables, so it is skipped.
func (sm *SchemaManager) AddForeignKeys(ctx context.Context) error {
	if strings.ToLower(sm.db.Dialect().Name().String()) == "sqlite" {
		return nil
	}

	fkManager := NewForeignKeyManager(sm.logger)
	if errors := fkManager.ValidateConstraints(); len(errors) > 0 {
		for _, err := range errors {
			sm.logger.Debug("Foreign key constraint validation failed", "error", err.Error())
		}
		return fmt.Errorf("foreign key constraint validation failed, %d errors in total", len(errors))
	}
	return fkManager.AddAllForeignKeys(ctx, sm.db)
}

// Bootstrap creates the tables and applies foreign keys.
func (sm *SchemaManager) Bootstrap(ctx context.Context) error {
	if sm.db == nil {
		return fmt.Errorf("database instance not initialized")
	}
	if err := sm.CreateTables(ctx); err != nil {
		return err
	}
	return sm.AddForeignKeys(ctx)
}

// BootstrapSchema creates tables and foreign keys for all registered models.
func BootstrapSchema(ctx context.Context, db *bun.DB) error {
	return NewSchemaManager(db, nil).Bootstrap(ctx)
}
