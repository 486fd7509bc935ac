// Package logging is the structured logger every package in the showcase
// binaries writes to. The server logs JSON to stdout; the client logs text
// to stderr so the REPL output stays clean.
package logging

import "context"

// Logger takes a message plus key/value pairs:
//
//	log.Info(ctx, "project loaded", "id", id, "page", page)
//
// The context is passed through to the handler so request-scoped values can
// be picked up.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}

// Nop drops every record.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
