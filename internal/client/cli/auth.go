package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/showcase/internal/client/actions"
	"github.com/dmitrijs2005/showcase/internal/client/client"
	"github.com/dmitrijs2005/showcase/internal/client/router"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

var errLoginRequired = errors.New("login required")

// Login switches to the login view, prompts for credentials and opens the
// admin area on success. A failed attempt leaves the current session as it
// was. The username may be passed as the first argument.
func (a *App) Login(ctx context.Context, args []string) error {
	a.router.Navigate(router.Login)

	var (
		username string
		err      error
	)
	if len(args) > 0 {
		username = args[0]
	} else {
		username, err = getSimpleText(a.reader, "Enter username", os.Stdout)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.actions.Login(ctx, username, password)
	if err != nil {
		a.render.Error(actions.DescribeLogin(err))
		return err
	}

	a.render.Success(fmt.Sprintf("Welcome, %s!", u.Username))
	return a.showAdmin(ctx)
}

// Logout ends the session and goes back to the gallery.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.render.Info("You are not logged in.")
		return nil
	}
	a.actions.Logout(ctx)
	a.render.Info("Logged out.")
	a.page = 1
	return a.loadPage(ctx, 1)
}

// requireLogin enters the admin view, or prints a hint when the guard sends
// the user to the login view instead.
func (a *App) requireLogin() error {
	if a.router.Navigate(router.Admin).View != router.ViewAdmin {
		a.render.Info("Login required. Use 'login'.")
		return errLoginRequired
	}
	return nil
}

// sessionExpired reports whether err is a rejected session, telling the user
// once. The adapter has already logged out and reset the view.
func (a *App) sessionExpired(err error) bool {
	if !errors.Is(err, client.ErrSessionExpired) {
		return false
	}
	a.render.Info("Your session has expired. Please log in again.")
	return true
}
