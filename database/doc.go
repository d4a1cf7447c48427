// Package database provides connection management, schema bootstrap, scoped
// transactions, foreign key handling, configuration types, logging, and
// health checks built on top of Bun.
package database
