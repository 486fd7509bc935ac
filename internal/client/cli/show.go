package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/client/router"
)

var errNoProjectOpen = errors.New("no project open")

// Show opens the detail view of a project.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "show")
	if err != nil {
		return err
	}

	if err := a.actions.OpenProject(ctx, id); err != nil {
		a.reportStoreError(err)
		return err
	}

	p, ok := a.store.Current()
	if !ok {
		return errNoProjectOpen
	}
	a.carousel.Reset(len(p.Images))
	a.render.ProjectDetail(p, a.carousel.Index())
	return nil
}

// Image moves the carousel of the open project.
func (a *App) Image(ctx context.Context, args []string) error {
	p, ok := a.store.Current()
	if !ok || a.router.Current().View != router.ViewDetail {
		a.render.Info("Open a project first with 'show <id>'.")
		return errNoProjectOpen
	}
	if len(p.Images) == 0 {
		a.render.Info("This project has no images.")
		return nil
	}
	if a.carousel.Len() != len(p.Images) {
		a.carousel.Reset(len(p.Images))
	}

	dir := "next"
	if len(args) > 0 {
		dir = strings.ToLower(args[0])
	}
	switch dir {
	case "next", "n":
		a.carousel.Next()
	case "prev", "p":
		a.carousel.Prev()
	default:
		a.render.Info("Usage: img next|prev")
		return fmt.Errorf("unknown direction %q", dir)
	}

	a.render.ImageLine(p.Images, a.carousel.Index())
	return nil
}

func (a *App) parseID(args []string, cmd string) (int64, error) {
	if len(args) == 0 {
		a.render.Info(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, errors.New("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		a.render.Error(fmt.Sprintf("invalid project id %q", args[0]))
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
