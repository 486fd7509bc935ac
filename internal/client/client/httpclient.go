package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/logging"
)

const maxErrorBody = 64 << 10

// HTTPClient talks to the showcase REST API.
//
// Two interceptors wrap every call. The outbound one reads the session token
// at send time and attaches it as a bearer credential. The inbound one handles
// a 401: unless the user is on the login view it logs the session out and
// resets navigation before the error is returned to the caller.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	session SessionContext
	nav     Navigator
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient builds an adapter rooted at baseURL. session must not be nil;
// nav may be nil when there is nothing to navigate.
func NewHTTPClient(baseURL string, session SessionContext, nav Navigator, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", baseURL)
	}
	if session == nil {
		return nil, errors.New("session context is required")
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		session: session,
		nav:     nav,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context, page, limit int) (*models.ListProjectsResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out models.ListProjectsResponse
	if err := c.do(ctx, http.MethodGet, "/api/projects", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id int64) (*models.ProjectResponse, error) {
	var out models.ProjectResponse
	if err := c.do(ctx, http.MethodGet, projectPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.ProjectResponse, error) {
	var out models.ProjectResponse
	if err := c.do(ctx, http.MethodPost, "/api/projects", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.ProjectResponse, error) {
	var out models.ProjectResponse
	if err := c.do(ctx, http.MethodPut, projectPath(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id int64) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodDelete, projectPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func projectPath(id int64) string {
	return "/api/projects/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, in any) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// authorize attaches the current session token. It reports whether one was
// present.
func (c *HTTPClient) authorize(req *http.Request) bool {
	token := c.session.Token()
	if token == "" {
		return false
	}
	req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	return true
}

// handleUnauthorized logs out and resets navigation unless the user is on the
// login view. It reports whether it did so.
func (c *HTTPClient) handleUnauthorized() bool {
	if c.nav != nil && c.nav.OnLoginView() {
		return false
	}
	c.session.Logout()
	if c.nav != nil {
		c.nav.ResetToLanding()
	}
	return true
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	req, err := c.newRequest(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	authenticated := c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Debug(ctx, "api request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := readAPIError(resp)
		intercepted := c.handleUnauthorized()
		apiErr.SessionExpired = intercepted && authenticated
		return apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body models.APIErrorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
		apiErr.Detail = body.Error
	}
	return apiErr
}
