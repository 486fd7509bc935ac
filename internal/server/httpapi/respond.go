package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/models"
)

const (
	msgLoginOK        = "Login exitoso"
	msgCreated        = "Proyecto creado exitosamente"
	msgUpdated        = "Proyecto actualizado exitosamente"
	msgDeleted        = "Proyecto eliminado exitosamente"
	msgNotFound       = "Proyecto no encontrado"
	msgBadCredentials = "Credenciales inválidas"
	msgMissingFields  = "Usuario y contraseña son requeridos"
	msgNoToken        = "Token no proporcionado"
	msgBadToken       = "Token inválido o expirado"
	msgBadBody        = "Cuerpo de la solicitud inválido"
	msgBadID          = "ID de proyecto inválido"
	msgInternal       = "Error interno del servidor"
)

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message, detail string) {
	writeJSON(w, code, models.ErrorResponse{Message: message, Error: detail})
}

// writeServiceError maps service errors onto statuses. Unclassified errors
// are logged and answered with a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message, "")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound, "")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, msgBadCredentials, "")
	case errors.Is(err, common.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, msgBadToken, "")
	default:
		s.logger.Error(r.Context(), "request failed",
			"request_id", requestIDFrom(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal, err.Error())
	}
}
