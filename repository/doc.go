// Package repository provides a generic repository abstraction built on Bun
// for CRUD operations, field lookups, relation loading, pagination, and
// transaction-aware execution.
package repository
