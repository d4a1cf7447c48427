// Package models defines the persisted shop entities (Product, Order,
// OrderItem), the payloads that create and update them, and the response
// shapes returned by the HTTP API.
package models
