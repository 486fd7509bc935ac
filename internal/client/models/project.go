// Package models defines the client-side view of the showcase API: projects,
// pagination, the authenticated user and the request/response bodies.
package models

import (
	"slices"
	"time"
)

// Project is a showcase entry as exchanged with the API. JSON names follow
// the wire contract of the backend.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	Images      []string  `json:"imagenes"`
	Stack       []string  `json:"stack"`
	Tags        []string  `json:"tags"`
	Creator     string    `json:"creador"`
	DemoURL     string    `json:"demo_url"`
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy so stores never share slices with callers.
func (p Project) Clone() Project {
	p.Images = slices.Clone(p.Images)
	p.Stack = slices.Clone(p.Stack)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// Pagination describes the page returned by the last list call.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
