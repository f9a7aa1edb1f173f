// Package api provides the HTTP API layer for the Snapfind service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS, logging and rate limiting
// - handlers/: HTTP request handlers for search, sessions and health
// - dto/: Response objects and mappers from core views
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST /v1/search                            raw image body, optional X-Conversation-ID
//	GET  /v1/sessions/{id}                     current page of a session
//	POST /v1/sessions/{id}/actions/{action}    show_general, show_marketplace, next, prev, export
//	GET  /v1/sessions/{id}/export              two-sheet xlsx attachment
//	GET  /v1/conversations/{owner}/session     latest session of a conversation
//	GET  /health
//	GET  /metrics                              when enabled
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Error Handling
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go:
//
//	expired or unknown session -> 404
//	validation error           -> 400
//	provider failure           -> 502
package api
