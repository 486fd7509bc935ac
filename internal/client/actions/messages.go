package actions

import (
	"errors"

	"github.com/dmitrijs2005/showcase/internal/client/client"
)

const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgConnection         = "Connection error. Check that the server is reachable."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgLoadProjects       = "Error loading projects"
	MsgLoadProject        = "Error loading project"
	MsgSaveProject        = "Error saving project"
	MsgDeleteProject      = "Error deleting project"
)

// Describe turns err into the message shown to the user. It returns "" for
// nil and for an expired session, which the HTTP adapter has already handled.
// A server-supplied message wins, then connectivity, then fallback.
func Describe(err error, fallback string) string {
	if err == nil || errors.Is(err, client.ErrSessionExpired) {
		return ""
	}
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	if errors.Is(err, client.ErrUnavailable) {
		return MsgConnection
	}
	return fallback
}

// DescribeLogin is Describe for the login form, where a 401 means wrong
// credentials regardless of what the server says.
func DescribeLogin(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, client.ErrUnauthorized) && !errors.Is(err, client.ErrSessionExpired) {
		return MsgInvalidCredentials
	}
	return Describe(err, MsgLoginFailed)
}
