package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/filex"
)

// readDataURI is a test seam for loading image files.
var readDataURI = filex.ReadDataURI

// clearMarker typed into a list prompt empties the list.
const clearMarker = "-"

// projectForm holds the editable fields of a project while the user fills
// them in.
type projectForm struct {
	Title       string
	Description string
	Creator     string
	DemoURL     string
	Stack       []string
	Tags        []string
	Images      []string
	Active      bool
}

func formFromProject(p models.Project) projectForm {
	return projectForm{
		Title:       p.Title,
		Description: p.Description,
		Creator:     p.Creator,
		DemoURL:     p.DemoURL,
		Stack:       slices.Clone(p.Stack),
		Tags:        slices.Clone(p.Tags),
		Images:      slices.Clone(p.Images),
		Active:      p.Active,
	}
}

// fill prompts for every field, offering the current values as defaults.
// editing adds the active toggle and asks before replacing images.
func (f *projectForm) fill(reader *bufio.Reader, w io.Writer, editing bool) error {
	var err error

	if f.Title, err = GetTextWithDefault(reader, "Title", f.Title, w); err != nil {
		return err
	}

	prompt := "Description (markdown)"
	if editing && f.Description != "" {
		prompt += ", leave empty to keep the current one"
	}
	desc, err := GetMultiline(reader, prompt, w)
	if err != nil {
		return err
	}
	if desc != "" {
		f.Description = desc
	}

	if f.Creator, err = GetTextWithDefault(reader, "Creator", f.Creator, w); err != nil {
		return err
	}
	if f.DemoURL, err = GetTextWithDefault(reader, "Demo URL (optional, '-' to clear)", f.DemoURL, w); err != nil {
		return err
	}
	if f.DemoURL == clearMarker {
		f.DemoURL = ""
	}

	if f.Stack, err = readCommaList(reader, "Stack, comma separated ('-' to clear)", f.Stack, w); err != nil {
		return err
	}
	if f.Tags, err = readCommaList(reader, "Tags, comma separated ('-' to clear)", f.Tags, w); err != nil {
		return err
	}

	replace := true
	if editing && len(f.Images) > 0 {
		if replace, err = GetConfirm(reader, fmt.Sprintf("Replace the %d current image(s)?", len(f.Images)), w); err != nil {
			return err
		}
	}
	if replace {
		paths, err := GetList(reader, "Image files", nil, w)
		if err != nil {
			return err
		}
		images, err := loadImages(paths)
		if err != nil {
			return err
		}
		f.Images = images
	}

	if editing {
		cur := "yes"
		if !f.Active {
			cur = "no"
		}
		v, err := GetTextWithDefault(reader, "Active (yes/no)", cur, w)
		if err != nil {
			return err
		}
		switch strings.ToLower(v) {
		case "y", "yes", "true":
			f.Active = true
		case "n", "no", "false":
			f.Active = false
		}
	}

	return nil
}

func readCommaList(reader *bufio.Reader, prompt string, current []string, w io.Writer) ([]string, error) {
	v, err := GetTextWithDefault(reader, prompt, strings.Join(current, ", "), w)
	if err != nil {
		return nil, err
	}
	return splitList(v), nil
}

// splitList parses a comma separated list, dropping blanks and duplicates.
func splitList(v string) []string {
	out := []string{}
	if strings.TrimSpace(v) == clearMarker {
		return out
	}
	for _, s := range strings.Split(v, ",") {
		out = appendUnique(out, s)
	}
	return out
}

func loadImages(paths []string) ([]string, error) {
	images := make([]string, 0, len(paths))
	for _, p := range paths {
		uri, err := readDataURI(p)
		if err != nil {
			return nil, fmt.Errorf("image %s: %w", p, err)
		}
		images = append(images, uri)
	}
	return images, nil
}

// validate returns the problems that would make the server reject the form.
func (f projectForm) validate() error {
	var errs []error
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(f.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if strings.TrimSpace(f.Creator) == "" {
		errs = append(errs, errors.New("creator is required"))
	}
	return errors.Join(errs...)
}

func (f projectForm) createRequest() models.CreateProjectRequest {
	return models.CreateProjectRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Images:      nonNil(f.Images),
		Stack:       nonNil(f.Stack),
		Tags:        nonNil(f.Tags),
		Creator:     strings.TrimSpace(f.Creator),
		DemoURL:     strings.TrimSpace(f.DemoURL),
	}
}

// updateRequest carries only the fields that differ from orig.
func (f projectForm) updateRequest(orig models.Project) models.UpdateProjectRequest {
	var req models.UpdateProjectRequest

	if t := strings.TrimSpace(f.Title); t != orig.Title {
		req.Title = models.Ptr(t)
	}
	if f.Description != orig.Description {
		req.Description = models.Ptr(f.Description)
	}
	if c := strings.TrimSpace(f.Creator); c != orig.Creator {
		req.Creator = models.Ptr(c)
	}
	if u := strings.TrimSpace(f.DemoURL); u != orig.DemoURL {
		req.DemoURL = models.Ptr(u)
	}
	if !slices.Equal(f.Stack, orig.Stack) {
		req.Stack = models.Ptr(nonNil(f.Stack))
	}
	if !slices.Equal(f.Tags, orig.Tags) {
		req.Tags = models.Ptr(nonNil(f.Tags))
	}
	if !slices.Equal(f.Images, orig.Images) {
		req.Images = models.Ptr(nonNil(f.Images))
	}
	if f.Active != orig.Active {
		req.Active = models.Ptr(f.Active)
	}
	return req
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
