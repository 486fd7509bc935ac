// Package services is the typed façade the CLI actions call. Each method maps
// to exactly one API call through client.Client and returns domain values;
// errors are wrapped, never swallowed.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/client/client"
	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// AuthService authenticates the administrator against the API.
type AuthService interface {
	// Login exchanges credentials for a user and bearer token. It needs no
	// existing session.
	Login(ctx context.Context, username, password string) (models.User, string, error)
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("login error: %w", err)
	}
	if resp.Token == "" {
		return models.User{}, "", errors.New("login error: empty token in response")
	}
	return resp.User, resp.Token, nil
}
