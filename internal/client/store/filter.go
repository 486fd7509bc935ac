package store

import (
	"strings"

	"github.com/dmitrijs2005/showcase/internal/client/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Match reports whether query occurs, case-insensitively, in the title,
// description, creator, any tag or any stack entry of p. An empty query
// matches everything.
func Match(p models.Project, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Lower(language.Und)
	q := fold.String(query)

	contains := func(s string) bool {
		return strings.Contains(fold.String(s), q)
	}

	if contains(p.Title) || contains(p.Description) || contains(p.Creator) {
		return true
	}
	for _, tag := range p.Tags {
		if contains(tag) {
			return true
		}
	}
	for _, tech := range p.Stack {
		if contains(tech) {
			return true
		}
	}
	return false
}

// Filter returns copies of the items matching query, in their original order.
func Filter(items []models.Project, query string) []models.Project {
	out := make([]models.Project, 0, len(items))
	for _, p := range items {
		if Match(p, query) {
			out = append(out, p.Clone())
		}
	}
	return out
}
