package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/server/models"
	"github.com/gorilla/mux"
)

// maxBodyBytes leaves room for several images at the per-image cap.
const maxBodyBytes = 64 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody, err.Error())
		return false
	}
	return true
}

func projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgBadID, "")
		return 0, false
	}
	return id, true
}

// queryInt reads a positive integer query parameter; anything else is 0.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields, "")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Message: msgLoginOK,
		User:    user.Public(),
		Token:   token,
	})
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	items, pg, err := s.projects.List(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	writeJSON(w, http.StatusOK, models.ListProjectsResponse{Projects: items, Pagination: pg})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	p, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ProjectResponse{Project: *p})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.projects.Create(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.ProjectResponse{Message: msgCreated, Project: *p})
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var patch models.ProjectPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := s.projects.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ProjectResponse{Message: msgUpdated, Project: *p})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	if err := s.projects.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msgDeleted})
}
