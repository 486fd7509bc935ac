package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/showcase/internal/client/actions"
)

// Admin shows the management table. It requires a session.
func (a *App) Admin(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.showAdmin(ctx)
}

func (a *App) showAdmin(ctx context.Context) error {
	if err := a.actions.LoadAdmin(ctx); err != nil {
		a.reportStoreError(err)
		return err
	}
	a.render.AdminTable(a.store.Projects())
	return nil
}

// Create asks for a new project and saves it. A rejected save offers to edit
// the same form again.
func (a *App) Create(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var f projectForm
	for {
		if err := f.fill(a.reader, os.Stdout, false); err != nil {
			a.render.Error(err.Error())
			return err
		}
		if err := f.validate(); err != nil {
			a.render.Error(err.Error())
			if a.retry(ctx) {
				continue
			}
			return err
		}

		p, err := a.actions.CreateProject(ctx, f.createRequest())
		if err == nil {
			a.render.Success(fmt.Sprintf("Project #%d created.", p.ID))
			return nil
		}
		if a.sessionExpired(err) {
			return err
		}
		a.render.Error(actions.Describe(err, actions.MsgSaveProject))
		if !a.retry(ctx) {
			return err
		}
	}
}

// Edit loads the full project and sends only the changed fields.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := a.parseID(args, "edit")
	if err != nil {
		return err
	}

	orig, err := a.actions.LoadForEdit(ctx, id)
	if err != nil {
		a.reportStoreError(err)
		return err
	}

	f := formFromProject(orig)
	for {
		if err := f.fill(a.reader, os.Stdout, true); err != nil {
			a.render.Error(err.Error())
			return err
		}
		if err := f.validate(); err != nil {
			a.render.Error(err.Error())
			if a.retry(ctx) {
				continue
			}
			return err
		}

		p, err := a.actions.UpdateProject(ctx, id, f.updateRequest(orig))
		switch {
		case err == nil:
			a.render.Success(fmt.Sprintf("Project #%d updated.", p.ID))
			return nil
		case errors.Is(err, actions.ErrNothingToUpdate):
			a.render.Info("Nothing changed.")
			return nil
		case a.sessionExpired(err):
			return err
		}
		a.render.Error(actions.Describe(err, actions.MsgSaveProject))
		if !a.retry(ctx) {
			return err
		}
	}
}

// Delete removes a project after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := a.parseID(args, "delete")
	if err != nil {
		return err
	}

	ok, err := getConfirm(a.reader, fmt.Sprintf("Delete project #%d?", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		a.render.Info("Cancelled.")
		return nil
	}

	msg, err := a.actions.DeleteProject(ctx, id)
	if err != nil {
		a.reportStoreError(err)
		return err
	}
	if msg == "" {
		msg = fmt.Sprintf("Project #%d deleted.", id)
	}
	a.render.Success(msg)
	return nil
}

// Status prints the connection and session state.
func (a *App) Status(ctx context.Context) error {
	mode := a.Mode()
	if mode == ModeUnknown {
		mode = "unknown"
	}
	a.render.Info(fmt.Sprintf("Server: %s (%s)", a.config.APIBaseURL, mode))

	if u, ok := a.session.User(); ok {
		a.render.Info(fmt.Sprintf("Logged in as %s", u.Username))
	} else {
		a.render.Info("Not logged in")
	}
	a.render.Info(fmt.Sprintf("View: %s", a.router.Current().Path()))
	return nil
}

// retry asks whether to go back to the form.
func (a *App) retry(ctx context.Context) bool {
	ok, err := getConfirm(a.reader, "Edit the form again?", os.Stdout)
	if err != nil {
		a.logger.Debug(ctx, "confirm failed", "err", err)
		return false
	}
	return ok
}
