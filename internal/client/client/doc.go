// Package client is the typed adapter between the showcase CLI and its API.
//
// # Overview
//
// The package provides:
//  1. The Client contract: Login, ListProjects, GetProject, CreateProject,
//     UpdateProject and DeleteProject.
//  2. HTTPClient, a JSON-over-HTTP implementation that attaches the session
//     bearer token to every request and reacts to 401 answers by clearing the
//     session and resetting navigation (see SessionContext and Navigator).
//  3. HealthProbe, a gRPC health check used by the online-status watcher.
//
// # Error Handling
//
// Non-2xx answers come back as *APIError carrying the server message verbatim.
// Sentinels for errors.Is: ErrUnavailable (no response), ErrUnauthorized (any
// 401), ErrSessionExpired (401 already handled by the interceptor) and
// ErrNotFound.
package client
