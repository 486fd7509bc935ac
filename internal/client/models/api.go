package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// CreateProjectRequest carries every field of a new project. Images are
// data URIs ("data:image/png;base64,..."). A nil Active lets the server
// default to active.
type CreateProjectRequest struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Images      []string `json:"imagenes"`
	Stack       []string `json:"stack"`
	Tags        []string `json:"tags"`
	Creator     string   `json:"creador"`
	DemoURL     string   `json:"demo_url"`
	Active      *bool    `json:"activo,omitempty"`
}

// UpdateProjectRequest is a partial update: nil fields are not sent and are
// left unchanged by the server. A non-nil pointer to an empty slice clears
// the list.
type UpdateProjectRequest struct {
	Title       *string   `json:"titulo,omitempty"`
	Description *string   `json:"descripcion,omitempty"`
	Images      *[]string `json:"imagenes,omitempty"`
	Stack       *[]string `json:"stack,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Creator     *string   `json:"creador,omitempty"`
	DemoURL     *string   `json:"demo_url,omitempty"`
	Active      *bool     `json:"activo,omitempty"`
}

// Empty reports whether the update carries no field at all.
func (r UpdateProjectRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Images == nil &&
		r.Stack == nil && r.Tags == nil && r.Creator == nil && r.DemoURL == nil &&
		r.Active == nil
}

// ListProjectsResponse is the body of GET /api/projects.
type ListProjectsResponse struct {
	Projects   []Project  `json:"proyectos"`
	Pagination Pagination `json:"pagination"`
}

// ProjectResponse wraps a single project (get, create, update).
type ProjectResponse struct {
	Message string  `json:"message,omitempty"`
	Project Project `json:"proyecto"`
}

// MessageResponse is returned by delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// APIErrorBody is the error payload of a failed call.
type APIErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Ptr returns a pointer to v; handy for building UpdateProjectRequest.
func Ptr[T any](v T) *T {
	return &v
}
