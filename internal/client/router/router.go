// Package router tracks which view the CLI is showing and guards the admin
// area. It implements client.Navigator, so the HTTP adapter can send the user
// back to the landing view when the server rejects the session.
package router

import (
	"fmt"
	"sync"
)

type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogin
	ViewAdmin
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewLogin:
		return "login"
	case ViewAdmin:
		return "admin"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Route is a view plus its parameter.
type Route struct {
	View      View
	ProjectID int64
}

var (
	Landing = Route{View: ViewList}
	Login   = Route{View: ViewLogin}
	Admin   = Route{View: ViewAdmin}
)

func Detail(id int64) Route {
	return Route{View: ViewDetail, ProjectID: id}
}

// Path renders the route the way the web front end addresses it.
func (r Route) Path() string {
	switch r.View {
	case ViewDetail:
		return fmt.Sprintf("/project/%d", r.ProjectID)
	case ViewLogin:
		return "/login"
	case ViewAdmin:
		return "/admin"
	}
	return "/"
}

// AuthChecker is satisfied by the session store.
type AuthChecker interface {
	IsAuthenticated() bool
}

type Router struct {
	mu      sync.RWMutex
	current Route
	auth    AuthChecker

	listeners []func(Route)
}

func New(auth AuthChecker) *Router {
	return &Router{current: Landing, auth: auth}
}

// Navigate moves to to, unless it is guarded and the session is not
// authenticated, in which case the login view is shown instead. It returns the
// route actually entered.
func (r *Router) Navigate(to Route) Route {
	if to.View == ViewAdmin && !r.auth.IsAuthenticated() {
		to = Login
	}

	r.mu.Lock()
	r.current = to
	fns := append([]func(Route){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range fns {
		fn(to)
	}
	return to
}

func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) OnLoginView() bool {
	return r.Current().View == ViewLogin
}

func (r *Router) ResetToLanding() {
	r.Navigate(Landing)
}

// OnChange registers fn to be called after every navigation.
func (r *Router) OnChange(fn func(Route)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}
