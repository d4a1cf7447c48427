// Package api exposes the shop over HTTP: product and order endpoints, the
// status and health endpoints, and the error mapping between domain errors
// and response payloads.
package api
