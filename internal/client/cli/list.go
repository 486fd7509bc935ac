package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/client/router"
)

// List loads a page of the public gallery. Without an argument it reloads the
// current page.
func (a *App) List(ctx context.Context, args []string) error {
	page := a.page
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.render.Error(fmt.Sprintf("invalid page %q", args[0]))
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = n
	}
	return a.loadPage(ctx, page)
}

func (a *App) loadPage(ctx context.Context, page int) error {
	a.router.Navigate(router.Landing)

	if err := a.actions.LoadPage(ctx, page); err != nil {
		a.reportStoreError(err)
		return err
	}
	a.page = page
	a.renderList()
	return nil
}

// Next moves to the following page when pagination is shown.
func (a *App) Next(ctx context.Context) error {
	pg, ok := a.store.Pagination()
	if !a.store.ShowPagination() || !ok {
		a.render.Info("There are no other pages.")
		return nil
	}
	if a.page >= pg.TotalPages {
		a.render.Info("Already on the last page.")
		return nil
	}
	return a.loadPage(ctx, a.page+1)
}

// Prev moves to the previous page when pagination is shown.
func (a *App) Prev(ctx context.Context) error {
	if !a.store.ShowPagination() {
		a.render.Info("There are no other pages.")
		return nil
	}
	if a.page <= 1 {
		a.render.Info("Already on the first page.")
		return nil
	}
	return a.loadPage(ctx, a.page-1)
}

// Search filters the loaded page; it makes no request.
func (a *App) Search(ctx context.Context, args []string) error {
	q := strings.TrimSpace(strings.Join(args, " "))
	if q == "" {
		return a.ClearSearch(ctx)
	}
	a.store.SetSearchQuery(q)
	a.renderList()
	return nil
}

func (a *App) ClearSearch(ctx context.Context) error {
	a.store.SetSearchQuery("")
	a.renderList()
	return nil
}

func (a *App) renderList() {
	st := a.store.Snapshot()
	a.render.ProjectList(a.store.Filtered(), st.Pagination, a.store.ShowPagination(), st.SearchQuery)
}

// reportStoreError prints the error the last action recorded, or the session
// notice when the adapter already logged the user out.
func (a *App) reportStoreError(err error) {
	if a.sessionExpired(err) {
		return
	}
	a.render.Error(a.store.Error())
}
