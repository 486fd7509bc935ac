// Package e2e holds tests that drive the client stack (HTTP adapter, stores,
// router and actions) against an in-process API server backed by memory
// repositories.
package e2e
