package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// CreateProjectRequest is the body of POST /api/projects. Active defaults to
// true when omitted.
type CreateProjectRequest struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Images      []string `json:"imagenes"`
	Stack       []string `json:"stack"`
	Tags        []string `json:"tags"`
	Creator     string   `json:"creador"`
	DemoURL     string   `json:"demo_url"`
	Active      *bool    `json:"activo"`
}

type ListProjectsResponse struct {
	Projects   []Project  `json:"proyectos"`
	Pagination Pagination `json:"pagination"`
}

type ProjectResponse struct {
	Message string  `json:"message,omitempty"`
	Project Project `json:"proyecto"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
