package models

import (
	"slices"
	"time"
)

// Project is a showcase entry. Images hold either data URIs or, when object
// storage is on, references to stored objects; the API always answers with
// data URIs.
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

func (p Project) Clone() Project {
	p.Images = slices.Clone(p.Images)
	p.Stack = slices.Clone(p.Stack)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// ProjectPatch is a partial update: nil fields are left unchanged.
type ProjectPatch struct {
	Title       *string   `json:"titulo"`
	Description *string   `json:"descripcion"`
	Images      *[]string `json:"imagenes"`
	Stack       *[]string `json:"stack"`
	Tags        *[]string `json:"tags"`
	Creator     *string   `json:"creador"`
	DemoURL     *string   `json:"demo_url"`
	Active      *bool     `json:"activo"`
}

// Apply copies the set fields of patch onto p.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Images != nil {
		p.Images = slices.Clone(*patch.Images)
	}
	if patch.Stack != nil {
		p.Stack = slices.Clone(*patch.Stack)
	}
	if patch.Tags != nil {
		p.Tags = slices.Clone(*patch.Tags)
	}
	if patch.Creator != nil {
		p.Creator = *patch.Creator
	}
	if patch.DemoURL != nil {
		p.DemoURL = *patch.DemoURL
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
}

// Pagination is the page envelope of the list endpoint.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
